// Package report writes the per-run summary table, one row per chromosome
// in genome mode and one row per region in region mode, as both a
// tab-delimited text file and an xlsx workbook.
package report

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"cnvplot/pkg/track"
)

var SummaryTitle = []string{
	"Name",
	"LRRCount",
	"BAFCount",
	"MedianLRR",
	"MedianBAF",
	"Start",
	"End",
}

// Row is one summary line.
type Row struct {
	Name      string
	LRRCount  int
	BAFCount  int
	MedianLRR float64
	MedianBAF float64
	Start     int
	End       int
}

func (r *Row) String() string {
	return fmt.Sprintf(
		"%s\t%d\t%d\t%f\t%f\t%d\t%d",
		r.Name,
		r.LRRCount,
		r.BAFCount,
		r.MedianLRR,
		r.MedianBAF,
		r.Start,
		r.End,
	)
}

// Summarize builds one row from a named pair of point sets. Start/End are
// the plotted extent over both tracks.
func Summarize(name string, lrr, baf []track.SignalPoint) Row {
	row := Row{
		Name:     name,
		LRRCount: len(lrr),
		BAFCount: len(baf),
		MedianLRR: track.Median(lo.Map(lrr, func(p track.SignalPoint, _ int) float64 {
			return p.Value
		})),
		MedianBAF: track.Median(lo.Map(baf, func(p track.SignalPoint, _ int) float64 {
			return p.Value
		})),
	}
	first := true
	for _, points := range [][]track.SignalPoint{lrr, baf} {
		for _, p := range points {
			if first {
				row.Start, row.End = p.Start, p.Start
				first = false
				continue
			}
			if p.Start < row.Start {
				row.Start = p.Start
			}
			if p.Start > row.End {
				row.End = p.Start
			}
		}
	}
	return row
}

// GenomeRows summarizes every chromosome of the LRR track in
// first-encountered order.
func GenomeRows(lrr, baf *track.Track) []Row {
	return lo.Map(lrr.Chromosomes(), func(chr string, _ int) Row {
		return Summarize(chr, lrr.Chrom(chr), baf.Chrom(chr))
	})
}

// RegionRows summarizes every region over its padded window; Start/End are
// the raw region bounds, matching the plot filenames.
func RegionRows(lrr, baf *track.Track, regions []track.Region, floor int) []Row {
	return lo.Map(regions, func(r track.Region, _ int) Row {
		from, to := r.PaddedWindow(floor)
		row := Summarize(r.Name(), lrr.FilterWindow(r.Chr, from, to), baf.FilterWindow(r.Chr, from, to))
		row.Start, row.End = r.Start, r.End
		return row
	})
}

// Write writes rows to prefix.txt and prefix.xlsx.
func Write(prefix string, rows []Row) error {
	out := osUtil.Create(prefix + ".txt")
	fmtUtil.FprintStringArray(out, SummaryTitle, "\t")
	for i := range rows {
		fmtUtil.Fprintln(out, &rows[i])
	}
	simpleUtil.CheckErr(out.Close())

	xlsx := excelize.NewFile()
	sheet := "Summary"
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))
	xlsx.SetSheetRow(sheet, "A1", &SummaryTitle)
	for i, r := range rows {
		line := []any{
			r.Name,
			r.LRRCount,
			r.BAFCount,
			r.MedianLRR,
			r.MedianBAF,
			r.Start,
			r.End,
		}
		xlsx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &line)
	}
	return xlsx.SaveAs(prefix + ".xlsx")
}
