package plot

import (
	"image"
	"image/png"
	"log/slog"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"cnvplot/pkg/config"
	"cnvplot/pkg/track"
)

// GenomeFileName is the single combined output of genome mode.
const GenomeFileName = "plot_genome.png"

// Genome renders one chart pair per chromosome of the LRR track, in
// first-encountered order, into one combined grid image in outDir.
func Genome(lrr, baf *track.Track, cfg *config.Config, outDir string) error {
	opt := Options{Width: cfg.Render.ChartWidth, Height: cfg.Render.ChartHeight}

	var pairs []*ChartPair
	for _, chr := range lrr.Chromosomes() {
		var (
			lrrPts   = lrr.Chrom(chr)
			bafPts   = baf.Chrom(chr)
			smoothed = track.Smooth(lrrPts, cfg.Smooth.BinSize)
			bands    = EdgeBands(lrrPts, bafPts, cfg.Window.EdgeSpan)
		)
		pairs = append(pairs, NewChartPair(chr, lrrPts, bafPts, smoothed, bands, opt))
	}

	chunks := Paginate(pairs, cfg.Render.ChunkSize)
	slog.Info("genome layout", "chromosomes", len(pairs), "chunks", len(chunks))

	img, err := ComposeGrid(chunks, cfg.Render.GridColumns, opt)
	if err != nil {
		return err
	}

	out := filepath.Join(outDir, GenomeFileName)
	if err := writePNG(out, img); err != nil {
		return err
	}
	slog.Info("wrote genome plot", "file", out)
	return nil
}

// EdgeBands marks the first and last span bases of the chromosome's plotted
// extent, the telomere-side edges of the chart.
func EdgeBands(lrr, baf []track.SignalPoint, span int) []Band {
	first := true
	var from, to int
	for _, points := range [][]track.SignalPoint{lrr, baf} {
		for _, p := range points {
			if first {
				from, to = p.Start, p.Start
				first = false
				continue
			}
			if p.Start < from {
				from = p.Start
			}
			if p.Start > to {
				to = p.Start
			}
		}
	}
	if first {
		return nil
	}
	return []Band{
		{From: float64(from), To: float64(from + span)},
		{From: float64(to - span), To: float64(to)},
	}
}

func writePNG(path string, img image.Image) error {
	f := osUtil.Create(path)
	defer simpleUtil.DeferClose(f)
	return png.Encode(f, img)
}
