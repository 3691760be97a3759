package track

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"
)

// SignalPoint is one row of a BAF or LRR table.
type SignalPoint struct {
	Chr   string
	Start int
	End   int
	Value float64
}

// Track holds one signal track in file order.
type Track struct {
	Points []SignalPoint
}

// LoadTrack reads a gzip-compressed tab-delimited table with a header row.
// The first four columns map to Chr, Start, End, Value.
func LoadTrack(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track %s: %w", path, err)
	}
	defer simpleUtil.DeferClose(f)

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gunzip track %s: %w", path, err)
	}
	defer simpleUtil.DeferClose(gz)

	var (
		t       Track
		scanner = bufio.NewScanner(gz)
		lineNo  int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			// header
			continue
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("parse track %s line %d: %w", path, lineNo, err)
		}
		t.Points = append(t.Points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read track %s: %w", path, err)
	}
	return &t, nil
}

func parsePoint(line string) (p SignalPoint, err error) {
	cols := strings.Split(line, "\t")
	if len(cols) < 4 {
		return p, fmt.Errorf("expect 4 columns, got %d", len(cols))
	}
	p.Chr = cols[0]
	p.Start, err = strconv.Atoi(cols[1])
	if err != nil {
		return p, fmt.Errorf("start: %w", err)
	}
	p.End, err = strconv.Atoi(cols[2])
	if err != nil {
		return p, fmt.Errorf("end: %w", err)
	}
	p.Value, err = strconv.ParseFloat(cols[3], 64)
	if err != nil {
		return p, fmt.Errorf("value: %w", err)
	}
	return p, nil
}

// Chromosomes returns the distinct chromosome names in first-encountered
// order, which is also the genome-plot rendering order.
func (t *Track) Chromosomes() []string {
	return lo.Uniq(lo.Map(t.Points, func(p SignalPoint, _ int) string {
		return p.Chr
	}))
}

// Chrom returns the points of one chromosome in file order.
func (t *Track) Chrom(chr string) []SignalPoint {
	return lo.Filter(t.Points, func(p SignalPoint, _ int) bool {
		return p.Chr == chr
	})
}

// FilterWindow keeps points of chr whose Start lies in [from, to]. Only
// Start is checked; a point whose End extends past the window is kept as
// long as its Start is inside.
func (t *Track) FilterWindow(chr string, from, to int) []SignalPoint {
	return lo.Filter(t.Points, func(p SignalPoint, _ int) bool {
		return p.Chr == chr && p.Start >= from && p.Start <= to
	})
}
