package lowp

import "image"

// Mask is an 8-bit coverage mask, grounded on the teacher's Mask type but
// narrowed to what the lowp pipeline's mask stage actually reads: at most
// two distinct coverage bytes per lane group (see
// internal/pipeline.MaskCtx), since the lowp pipeline only ever applies a
// single mask value across a whole lane or splits it at one boundary.
type Mask struct {
	width, height int
	data          []uint8
}

// NewMask creates a mask with every value 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, data: make([]uint8, width*height)}
}

// NewMaskFromAlpha builds a mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.data[y*m.width+x] = uint8(a >> 8)
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), or 0 outside bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set stores the mask value at (x, y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// CopyAtXY implements internal/pipeline.MaskCtx: it returns the mask value
// at the lane's first pixel and at its last covered pixel (tail-1), which is
// all a lowp mask stage consumes — a uniform run reads the same value
// twice, and a lane straddling a hard edge reads both ends.
func (m *Mask) CopyAtXY(dx, dy, tail int) [2]uint8 {
	if tail <= 0 {
		return [2]uint8{}
	}
	return [2]uint8{m.At(dx, dy), m.At(dx+tail-1, dy)}
}
