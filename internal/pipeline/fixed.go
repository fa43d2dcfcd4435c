package pipeline

import "github.com/gogpu/lowp/internal/wide"

// div255 approximates v/255 as (v+255)/256, accurate for v in [0, 255*255].
// Used after every u16*u16 product that should return a value in [0, 255].
// This is spec.md's pinned formula (§9 Open Question): the cheaper, biased
// approximation, not the exact Alvy Ray Smith formula.
func div255(v wide.U16x16) wide.U16x16 {
	sum := v.Add(wide.SplatU16(255))
	var result wide.U16x16
	for i := range sum {
		result[i] = sum[i] / 256
	}
	return result
}

// inv computes 255 - v.
func inv(v wide.U16x16) wide.U16x16 {
	return wide.SplatU16(255).Sub(v)
}

// fromFloat converts a float in [0, 1] to a splatted fixed-point lane.
func fromFloat(f float32) wide.U16x16 {
	return wide.SplatU16(uint16(f*255.0 + 0.5))
}

// lerp blends from toward to by t, all in fixed-point [0, 255] space.
func lerp(from, to, t wide.U16x16) wide.U16x16 {
	return div255(from.Mul(inv(t)).Add(to.Mul(t)))
}

// mad computes f*m + a for float lanes.
func mad(f, m, a wide.F32x16) wide.F32x16 {
	return f.Mul(m).Add(a)
}
