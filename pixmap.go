package lowp

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/lowp/internal/pixel"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Pixmap)(nil)
	_ draw.Image  = (*Pixmap)(nil)
)

// Pixmap is a rectangular premultiplied-RGBA8 pixel buffer. It implements
// image.Image and draw.Image so it interoperates with golang.org/x/image
// decoders/encoders and image/draw, and it implements
// internal/pipeline.PixelsCtx so it can be handed directly to a pipeline
// driver run.
type Pixmap struct {
	width, height int
	data          []pixel.Packed8888
}

// NewPixmap creates a pixmap, transparent unless WithClearColor is given.
func NewPixmap(width, height int, opts ...PixmapOption) *Pixmap {
	var o pixmapOptions
	for _, opt := range opts {
		opt(&o)
	}

	pm := &Pixmap{
		width:  width,
		height: height,
		data:   make([]pixel.Packed8888, width*height),
	}
	if o.clear != nil {
		pm.Clear(*o.clear)
	}
	return pm
}

func (p *Pixmap) Width() int  { return p.width }
func (p *Pixmap) Height() int { return p.height }

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image. Returns premultiplied color.RGBA, matching the
// buffer's own representation (color.RGBA is itself premultiplied).
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	px := p.data[y*p.width+x]
	return color.RGBA{R: px.R, G: px.G, B: px.B, A: px.A}
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := color.RGBAModel.Convert(c).(color.RGBA).RGBA()
	p.data[y*p.width+x] = pixel.Packed8888{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Clear fills the entire pixmap with a premultiplied color.
func (p *Pixmap) Clear(c Color) {
	px := pixel.Packed8888{R: c.R, G: c.G, B: c.B, A: c.A}
	for i := range p.data {
		p.data[i] = px
	}
}

// Slice16AtXY implements internal/pipeline.PixelsCtx.
func (p *Pixmap) Slice16AtXY(dx, dy int) *[pixel.Width]pixel.Packed8888 {
	off := dy*p.width + dx
	return (*[pixel.Width]pixel.Packed8888)(p.data[off : off+pixel.Width])
}

// SliceAtXY implements internal/pipeline.PixelsCtx.
func (p *Pixmap) SliceAtXY(dx, dy int) []pixel.Packed8888 {
	off := dy*p.width + dx
	return p.data[off:]
}
