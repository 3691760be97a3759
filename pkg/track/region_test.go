package track

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPaddedWindow(t *testing.T) {
	tests := []struct {
		name     string
		region   Region
		floor    int
		wantFrom int
		wantTo   int
	}{
		{
			name:     "narrow region uses the floor",
			region:   Region{Chr: "chr1", Start: 1000000, End: 1050000},
			floor:    DefaultPaddingFloor,
			wantFrom: 400000,
			wantTo:   1650000,
		},
		{
			name:     "wide region pads by its own span",
			region:   Region{Chr: "chr1", Start: 1000000, End: 2000000},
			floor:    DefaultPaddingFloor,
			wantFrom: 0,
			wantTo:   3000000,
		},
		{
			name:     "window may go negative",
			region:   Region{Chr: "chr1", Start: 100, End: 200},
			floor:    600000,
			wantFrom: -599900,
			wantTo:   600200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.region.PaddedWindow(tt.floor)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("PaddedWindow = [%d, %d], want [%d, %d]", from, to, tt.wantFrom, tt.wantTo)
			}
			if padding := tt.region.Start - from; padding < tt.floor {
				t.Errorf("padding %d below floor %d", padding, tt.floor)
			}
		})
	}
}

func TestRegionName(t *testing.T) {
	r := Region{Chr: "chr1", Start: 1000000, End: 1050000, Type: "DUP"}
	if got := r.Name(); got != "chr1:1000000-1050000" {
		t.Errorf("Name() = %q", got)
	}
}

func TestLoadRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.tsv")
	content := "chr1\t1000000\t1050000\tDEL\nchr2\t5000\t9000\tDUP\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	regions, err := LoadRegions(path)
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}
	want := []Region{
		{Chr: "chr1", Start: 1000000, End: 1050000, Type: "DEL"},
		{Chr: "chr2", Start: 5000, End: 9000, Type: "DUP"},
	}
	if !reflect.DeepEqual(regions, want) {
		t.Errorf("regions = %+v, want %+v", regions, want)
	}
}

func TestLoadRegionsMissing(t *testing.T) {
	if _, err := LoadRegions(filepath.Join(t.TempDir(), "absent.tsv")); err == nil {
		t.Error("missing region file should error")
	}
}

func TestLoadRegionsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	regions, err := LoadRegions(path)
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("expected no regions, got %+v", regions)
	}
}

func TestLoadRegionsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tsv")
	if err := os.WriteFile(path, []byte("chr1\tabc\t100\tDEL\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRegions(path); err == nil {
		t.Error("malformed start should error")
	}
}
