package plot

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cnvplot/pkg/config"
	"cnvplot/pkg/track"
)

// RegionFileName names the per-region output from the raw unpadded bounds,
// so identical inputs always overwrite the same file.
func RegionFileName(r track.Region) string {
	return fmt.Sprintf("plot_%s_%d_%d.png", r.Chr, r.Start, r.End)
}

// Regions renders one padded chart pair per region, one PNG each. A failure
// on one region is logged and does not abort the remaining regions.
func Regions(lrr, baf *track.Track, regions []track.Region, cfg *config.Config, outDir string) {
	opt := Options{Width: cfg.Render.ChartWidth, Height: cfg.Render.ChartHeight}

	for _, r := range regions {
		from, to := r.PaddedWindow(cfg.Window.PaddingFloor)
		var (
			lrrPts   = lrr.FilterWindow(r.Chr, from, to)
			bafPts   = baf.FilterWindow(r.Chr, from, to)
			smoothed = track.Smooth(lrrPts, cfg.Smooth.BinSize)
			// highlight the requested interval, not the padded window
			bands = []Band{{From: float64(r.Start), To: float64(r.End)}}
		)
		pair := NewChartPair(r.Name(), lrrPts, bafPts, smoothed, bands, opt)

		img, err := pair.Render()
		if err != nil {
			slog.Error("render region", "region", r.Name(), "err", err)
			continue
		}
		out := filepath.Join(outDir, RegionFileName(r))
		if err := writePNG(out, img); err != nil {
			slog.Error("write region plot", "region", r.Name(), "file", out, "err", err)
			continue
		}
		slog.Info("wrote region plot", "region", r.Name(), "points", len(lrrPts)+len(bafPts), "file", out)
	}
}
