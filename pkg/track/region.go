package track

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPaddingFloor is the minimum padding in bases added on each side of
// a region before filtering the surrounding track data.
const DefaultPaddingFloor = 600000

// Region is one requested interval from the region table.
type Region struct {
	Chr   string
	Start int
	End   int
	Type  string
}

// Name returns the raw-bound identifier used in chart titles.
func (r Region) Name() string {
	return fmt.Sprintf("%s:%d-%d", r.Chr, r.Start, r.End)
}

// PaddedWindow pads the region on both sides by max(End-Start, floor).
// Bounds are not clamped and may go negative.
func (r Region) PaddedWindow(floor int) (from, to int) {
	padding := max(r.End-r.Start, floor)
	return r.Start - padding, r.End + padding
}

// LoadRegions reads a plain tab-delimited region table without a header,
// columns Chr, Start, End, Type. A missing or unreadable file is an error
// the caller is expected to treat as a no-op, not a failure.
func LoadRegions(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions %s: %w", path, err)
	}

	var regions []Region
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			return nil, fmt.Errorf("parse regions %s line %d: expect 4 columns, got %d", path, i+1, len(cols))
		}
		var r Region
		r.Chr = cols[0]
		r.Start, err = strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("parse regions %s line %d start: %w", path, i+1, err)
		}
		r.End, err = strconv.Atoi(cols[2])
		if err != nil {
			return nil, fmt.Errorf("parse regions %s line %d end: %w", path, i+1, err)
		}
		if len(cols) > 3 {
			r.Type = cols[3]
		}
		regions = append(regions, r)
	}
	return regions, nil
}
