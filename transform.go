package lowp

import (
	"math"

	"github.com/gogpu/lowp/internal/pipeline"
)

// Transform is a 2D affine transform in Skia's row form:
//
//	nx = sx*x + kx*y + tx
//	ny = ky*x + sy*y + ty
//
// It is an alias of internal/pipeline.Transform so values built here can be
// passed directly as a transform stage's context.
type Transform = pipeline.Transform

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Sx: 1, Ky: 0, Kx: 0, Sy: 1, Tx: 0, Ty: 0}
}

// TranslateBy returns a translation transform.
func TranslateBy(x, y float32) Transform {
	return Transform{Sx: 1, Ky: 0, Kx: 0, Sy: 1, Tx: x, Ty: y}
}

// ScaleBy returns a scaling transform.
func ScaleBy(x, y float32) Transform {
	return Transform{Sx: x, Ky: 0, Kx: 0, Sy: y, Tx: 0, Ty: 0}
}

// RotateBy returns a rotation transform, angle in radians.
func RotateBy(angle float32) Transform {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Transform{Sx: c, Ky: s, Kx: -s, Sy: c, Tx: 0, Ty: 0}
}

// ShearBy returns a shear transform.
func ShearBy(x, y float32) Transform {
	return Transform{Sx: 1, Ky: y, Kx: x, Sy: 1, Tx: 0, Ty: 0}
}

// Multiply composes two transforms so that applying the result is
// equivalent to applying other, then m (Multiply(m, other) applies other
// first, matching the teacher's Matrix.Multiply convention).
func Multiply(m, other Transform) Transform {
	return Transform{
		Sx: m.Sx*other.Sx + m.Kx*other.Ky,
		Kx: m.Sx*other.Kx + m.Kx*other.Sy,
		Tx: m.Sx*other.Tx + m.Kx*other.Ty + m.Tx,
		Ky: m.Ky*other.Sx + m.Sy*other.Ky,
		Sy: m.Ky*other.Kx + m.Sy*other.Sy,
		Ty: m.Ky*other.Tx + m.Sy*other.Ty + m.Ty,
	}
}
