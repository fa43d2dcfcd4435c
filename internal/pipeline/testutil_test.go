package pipeline

import "github.com/gogpu/lowp/internal/pixel"

// fakePixmap is a minimal PixelsCtx backed by a flat row-major buffer, used
// only by this package's tests.
type fakePixmap struct {
	width, height int
	data          []pixel.Packed8888
}

func newFakePixmap(width, height int) *fakePixmap {
	return &fakePixmap{width: width, height: height, data: make([]pixel.Packed8888, width*height)}
}

func (f *fakePixmap) Slice16AtXY(dx, dy int) *[pixel.Width]pixel.Packed8888 {
	start := dy*f.width + dx
	return (*[pixel.Width]pixel.Packed8888)(f.data[start : start+pixel.Width])
}

func (f *fakePixmap) SliceAtXY(dx, dy int) []pixel.Packed8888 {
	start := dy*f.width + dx
	return f.data[start:]
}

// fakeMask is a minimal MaskCtx returning a constant coverage pair,
// sufficient for the lowp path's two-distinct-value mask model.
type fakeMask struct {
	v0, v1 uint8
}

func (m fakeMask) CopyAtXY(dx, dy, tail int) [2]uint8 {
	return [2]uint8{m.v0, m.v1}
}

func setUniform(ctx *UniformColorCtx, r, g, b, a uint16) {
	ctx.RGBA = [4]uint16{r, g, b, a}
}
