package pipeline

import "github.com/gogpu/lowp/internal/pixel"

// UniformColorCtx is a premultiplied constant color in [0, 255] per channel.
type UniformColorCtx struct {
	RGBA [4]uint16
}

// MaskCtx is a byte coverage mask. The lowp mask path supports at most two
// distinct mask values per lane group (higher-detail coverage is handled by
// the hipp pipeline) — CopyAtXY returns up to 2 mask bytes.
type MaskCtx interface {
	CopyAtXY(dx, dy, tail int) [2]uint8
}

// PixelsCtx is a target pixmap view borrowed for the duration of one
// driver call.
type PixelsCtx interface {
	// Slice16AtXY returns exactly Width consecutive pixels at (dx, dy).
	Slice16AtXY(dx, dy int) *[pixel.Width]pixel.Packed8888
	// SliceAtXY returns at least tail consecutive pixels at (dx, dy), for
	// tail programs.
	SliceAtXY(dx, dy int) []pixel.Packed8888
}

// ColorF32 is a four-channel float color used by gradient contexts.
type ColorF32 struct {
	R, G, B, A float32
}

// GradientCtx is a colour-stop table with parallel arrays: for t in
// [t_values[i], t_values[i+1]], the color is factors[i]*t + biases[i].
type GradientCtx struct {
	Factors  []ColorF32
	Biases   []ColorF32
	TValues  []float32
	Len      int
}

// EvenlySpaced2StopGradientCtx is a degenerate two-stop gradient: a single
// scalar factor/bias pair, evaluated with no stop lookup.
type EvenlySpaced2StopGradientCtx struct {
	Factor ColorF32
	Bias   ColorF32
}

// Transform is an affine transform in Skia's row form:
//
//	nx = sx*x + kx*y + tx
//	ny = ky*x + sy*y + ty
type Transform struct {
	Sx, Ky, Kx, Sy, Tx, Ty float32
}

// GetRow returns the transform's six coefficients in the order the
// transform stage consumes them.
func (t Transform) GetRow() (sx, ky, kx, sy, tx, ty float32) {
	return t.Sx, t.Ky, t.Kx, t.Sy, t.Tx, t.Ty
}
