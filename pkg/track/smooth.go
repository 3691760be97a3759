package track

import (
	"math"
	"sort"
)

// DefaultBinSize is the number of consecutive LRR rows reduced to one
// smoothed point.
const DefaultBinSize = 10

// SmoothedPoint is one bin of the smoothed LRR trend line.
type SmoothedPoint struct {
	Position float64
	Value    float64
}

// Smooth reduces points to one median point per bin of k consecutive rows.
// Rows are sorted by Start first; bin membership is by sort order, not
// genomic distance, and the trailing short bin is still emitted. BAF tracks
// are never smoothed.
func Smooth(points []SignalPoint, k int) []SmoothedPoint {
	if len(points) == 0 || k <= 0 {
		return nil
	}
	sorted := make([]SignalPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var out []SmoothedPoint
	for i := 0; i < len(sorted); i += k {
		bin := sorted[i:min(i+k, len(sorted))]
		starts := make([]float64, len(bin))
		values := make([]float64, len(bin))
		for j, p := range bin {
			starts[j] = float64(p.Start)
			values[j] = p.Value
		}
		out = append(out, SmoothedPoint{
			Position: Median(starts),
			Value:    Median(values),
		})
	}
	return out
}

// Median returns the interpolated median: the mean of the two middle values
// when the count is even.
func Median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	s := make([]float64, len(v))
	copy(s, v)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
