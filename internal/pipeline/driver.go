package pipeline

import "github.com/gogpu/lowp/internal/pixel"

// Width is the pipeline's lane width: 16 pixels.
const Width = pixel.Width

// Rect is the screen rectangle a Start call fills: [X, Right) x [Y, Bottom).
type Rect struct {
	X, Y, Right, Bottom int
}

// Start walks rect row by row, dispatching the full-width program over
// every aligned Width-pixel chunk and the tail program over whatever is
// left at the end of the row. This is the sole entry point the pipeline
// compiler calls; it blocks until the whole rectangle has been processed
// (spec.md §5: the driver is strictly single-threaded and synchronous).
func Start(full, tail []Slot, rect Rect) {
	var p Record

	for y := rect.Y; y < rect.Bottom; y++ {
		col := rect.X
		end := rect.Right

		for col+Width <= end {
			p.Dx = col
			p.Dy = y
			p.Tail = Width
			p.run(full)
			col += Width
		}

		if col < end {
			p.Dx = col
			p.Dy = y
			p.Tail = end - col
			p.run(tail)
		}
	}
}
