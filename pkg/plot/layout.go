package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/samber/lo"
)

// Paginate partitions pairs into consecutive chunks of at most chunkSize,
// preserving order. Chunking only bounds internal grouping; the genome view
// still renders every chunk into one combined image.
func Paginate(pairs []*ChartPair, chunkSize int) [][]*ChartPair {
	if len(pairs) == 0 {
		return nil
	}
	return lo.Chunk(pairs, chunkSize)
}

// ComposeGrid renders every chunk's pairs into a single canvas, columns per
// row, chunks concatenated in order.
func ComposeGrid(chunks [][]*ChartPair, columns int, opt Options) (image.Image, error) {
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	if total == 0 {
		return nil, fmt.Errorf("no chart pairs to lay out")
	}

	var (
		cellW  = opt.Width
		cellH  = 2 * opt.Height
		rows   = (total + columns - 1) / columns
		canvas = image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	)
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	idx := 0
	for _, chunk := range chunks {
		for _, pair := range chunk {
			img, err := pair.Render()
			if err != nil {
				return nil, err
			}
			x := (idx % columns) * cellW
			y := (idx / columns) * cellH
			draw.Draw(canvas, image.Rect(x, y, x+cellW, y+cellH), img, image.Point{}, draw.Over)
			idx++
		}
	}
	return canvas, nil
}
