package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"cnvplot/pkg/track"
)

var (
	dotColor   = drawing.Color{R: 70, G: 70, B: 70, A: 255}
	trendColor = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	refColor   = drawing.Color{R: 120, G: 120, B: 120, A: 255}
	bandColor  = drawing.Color{R: 255, G: 196, B: 0, A: 60}
)

// Band is a highlighted x-interval drawn as a translucent strip over the
// full chart height.
type Band struct {
	From float64
	To   float64
}

// Options carries the fixed render parameters for one chart pair.
type Options struct {
	Width  int
	Height int
}

// ChartPair is one LRR chart stacked above one BAF chart on a shared
// x-domain, the unit of rendering for both run modes.
type ChartPair struct {
	Name string
	LRR  chart.Chart
	BAF  chart.Chart

	width  int
	height int
}

// NewChartPair composes the paired charts for one chromosome or region.
// The LRR chart carries the title and the smoothed trend; the BAF chart
// carries the "Position" axis label. Both share one fixed x-range computed
// from the plotted points of both tracks.
func NewChartPair(title string, lrr, baf []track.SignalPoint, smoothed []track.SmoothedPoint, bands []Band, opt Options) *ChartPair {
	xMin, xMax := xDomain(lrr, baf, bands)

	lrrSeries := []chart.Series{refLine(0, xMin, xMax)}
	lrrSeries = append(lrrSeries, bandSeries(bands, -1, 1)...)
	if len(lrr) > 0 {
		lrrSeries = append(lrrSeries, scatter(lrr))
	}
	if len(smoothed) > 0 {
		lrrSeries = append(lrrSeries, trendLine(smoothed))
	}

	bafSeries := []chart.Series{refLine(0.5, xMin, xMax)}
	bafSeries = append(bafSeries, bandSeries(bands, 0, 1)...)
	if len(baf) > 0 {
		bafSeries = append(bafSeries, scatter(baf))
	}

	return &ChartPair{
		Name: title,
		LRR: chart.Chart{
			Title:  title,
			Width:  opt.Width,
			Height: opt.Height,
			XAxis: chart.XAxis{
				Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
				ValueFormatter: chart.IntValueFormatter,
			},
			YAxis: chart.YAxis{
				Range:          &chart.ContinuousRange{Min: -1, Max: 1},
				ValueFormatter: shortFloat,
			},
			Series: lrrSeries,
		},
		BAF: chart.Chart{
			Width:  opt.Width,
			Height: opt.Height,
			XAxis: chart.XAxis{
				Name:           "Position",
				Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
				ValueFormatter: chart.IntValueFormatter,
			},
			YAxis: chart.YAxis{
				Range:          &chart.ContinuousRange{Min: 0, Max: 1},
				ValueFormatter: shortFloat,
			},
			Series: bafSeries,
		},
		width:  opt.Width,
		height: opt.Height,
	}
}

// Render draws both charts and stacks them vertically, LRR above BAF.
func (p *ChartPair) Render() (image.Image, error) {
	lrrImg, err := renderPNG(p.LRR)
	if err != nil {
		return nil, fmt.Errorf("render LRR chart %s: %w", p.Name, err)
	}
	bafImg, err := renderPNG(p.BAF)
	if err != nil {
		return nil, fmt.Errorf("render BAF chart %s: %w", p.Name, err)
	}

	combined := image.NewRGBA(image.Rect(0, 0, p.width, 2*p.height))
	draw.Draw(combined, image.Rect(0, 0, p.width, p.height), lrrImg, image.Point{}, draw.Src)
	draw.Draw(combined, image.Rect(0, p.height, p.width, 2*p.height), bafImg, image.Point{}, draw.Src)
	return combined, nil
}

func renderPNG(c chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func xDomain(lrr, baf []track.SignalPoint, bands []Band) (xMin, xMax float64) {
	first := true
	grow := func(v float64) {
		if first {
			xMin, xMax = v, v
			first = false
			return
		}
		if v < xMin {
			xMin = v
		}
		if v > xMax {
			xMax = v
		}
	}
	for _, p := range lrr {
		grow(float64(p.Start))
	}
	for _, p := range baf {
		grow(float64(p.Start))
	}
	if first {
		for _, b := range bands {
			grow(b.From)
			grow(b.To)
		}
	}
	if first {
		return 0, 1
	}
	if xMin == xMax {
		xMax = xMin + 1
	}
	return xMin, xMax
}

func scatter(points []track.SignalPoint) chart.Series {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Start)
		ys[i] = p.Value
	}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    1.5,
			DotColor:    dotColor,
		},
	}
}

func trendLine(smoothed []track.SmoothedPoint) chart.Series {
	xs := make([]float64, len(smoothed))
	ys := make([]float64, len(smoothed))
	for i, s := range smoothed {
		xs[i] = s.Position
		ys[i] = s.Value
	}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: trendColor,
			StrokeWidth: 2,
		},
	}
}

func refLine(y, xMin, xMax float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{xMin, xMax},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     refColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 4},
		},
	}
}

// bandSeries draws a band as two translucent area fills, one hung from the
// top of the y-range and one from the bottom; go-chart fills between a
// series and y=0, so the two halves together cover the full height.
func bandSeries(bands []Band, yMin, yMax float64) []chart.Series {
	var out []chart.Series
	for _, b := range bands {
		for _, y := range []float64{yMax, yMin} {
			if y == 0 {
				continue
			}
			out = append(out, chart.ContinuousSeries{
				XValues: []float64{b.From, b.To},
				YValues: []float64{y, y},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					StrokeWidth: chart.Disabled,
					FillColor:   bandColor,
				},
			})
		}
	}
	return out
}

func shortFloat(v interface{}) string {
	return chart.FloatValueFormatterWithFormat(v, "%.1f")
}
