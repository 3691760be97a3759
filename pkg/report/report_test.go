package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cnvplot/pkg/track"
)

func TestSummarize(t *testing.T) {
	lrr := []track.SignalPoint{
		{Chr: "chr1", Start: 100, Value: 0.1},
		{Chr: "chr1", Start: 300, Value: 0.5},
		{Chr: "chr1", Start: 200, Value: 0.3},
	}
	baf := []track.SignalPoint{
		{Chr: "chr1", Start: 50, Value: 0.4},
		{Chr: "chr1", Start: 400, Value: 0.6},
	}
	row := Summarize("chr1", lrr, baf)
	if row.LRRCount != 3 || row.BAFCount != 2 {
		t.Errorf("counts = %d/%d, want 3/2", row.LRRCount, row.BAFCount)
	}
	if row.MedianLRR != 0.3 {
		t.Errorf("MedianLRR = %f, want 0.3", row.MedianLRR)
	}
	if row.MedianBAF != 0.5 {
		t.Errorf("MedianBAF = %f, want 0.5", row.MedianBAF)
	}
	if row.Start != 50 || row.End != 400 {
		t.Errorf("extent = [%d, %d], want [50, 400]", row.Start, row.End)
	}
}

func TestGenomeRowsOrder(t *testing.T) {
	lrr := &track.Track{Points: []track.SignalPoint{
		{Chr: "chr2", Start: 1, Value: 0},
		{Chr: "chr1", Start: 2, Value: 0},
		{Chr: "chr10", Start: 3, Value: 0},
	}}
	baf := &track.Track{}
	rows := GenomeRows(lrr, baf)
	want := []string{"chr2", "chr1", "chr10"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Name != w {
			t.Errorf("row %d = %s, want %s", i, rows[i].Name, w)
		}
	}
}

func TestRegionRowsRawBounds(t *testing.T) {
	lrr := &track.Track{Points: []track.SignalPoint{
		{Chr: "chr1", Start: 500000, Value: 0.2},
		{Chr: "chr1", Start: 1600000, Value: 0.4},
	}}
	baf := &track.Track{}
	regions := []track.Region{{Chr: "chr1", Start: 1000000, End: 1050000}}

	rows := RegionRows(lrr, baf, regions, track.DefaultPaddingFloor)
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	// both points fall inside the padded window [400000, 1650000]
	if rows[0].LRRCount != 2 {
		t.Errorf("LRRCount = %d, want 2", rows[0].LRRCount)
	}
	// Start/End report the raw region, not the padded window
	if rows[0].Start != 1000000 || rows[0].End != 1050000 {
		t.Errorf("bounds = [%d, %d], want raw region", rows[0].Start, rows[0].End)
	}
}

func TestWrite(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "summary")
	rows := []Row{
		{Name: "chr1", LRRCount: 10, BAFCount: 8, MedianLRR: 0.1, MedianBAF: 0.5, Start: 100, End: 900},
	}
	if err := Write(prefix, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(prefix + ".txt")
	if err != nil {
		t.Fatalf("summary text missing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want title + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name\t") {
		t.Errorf("bad title line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "chr1\t10\t8\t") {
		t.Errorf("bad row line: %q", lines[1])
	}

	if _, err := os.Stat(prefix + ".xlsx"); err != nil {
		t.Errorf("summary workbook missing: %v", err)
	}
}
