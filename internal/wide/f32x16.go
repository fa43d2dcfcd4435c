package wide

// F32x16 represents 16 float32 lanes, stored as four F32x4 groups. The
// four-group layout mirrors the pipeline's need to repack an F32x16
// byte-for-byte into two U16x16 registers (see split/join in package
// pipeline): each F32x4 group occupies exactly 16 bytes, so the whole value
// occupies 64 bytes, matching two U16x16 registers (32 bytes each).
type F32x16 [4]F32x4

// SplatF32x16 creates an F32x16 with every lane set to n.
func SplatF32x16(n float32) F32x16 {
	g := SplatF32x4(n)
	return F32x16{g, g, g, g}
}

// Add performs lane-wise addition.
func (v F32x16) Add(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Add(other[i])
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x16) Sub(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Sub(other[i])
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x16) Mul(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Mul(other[i])
	}
	return result
}

// Div performs lane-wise division.
func (v F32x16) Div(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Div(other[i])
	}
	return result
}

// Min performs a lane-wise minimum.
func (v F32x16) Min(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Min(other[i])
	}
	return result
}

// Max performs a lane-wise maximum.
func (v F32x16) Max(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Max(other[i])
	}
	return result
}

// Abs returns the lane-wise absolute value.
func (v F32x16) Abs() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Abs()
	}
	return result
}

// Floor returns the lane-wise floor.
func (v F32x16) Floor() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Floor()
	}
	return result
}

// Sqrt returns the lane-wise square root.
func (v F32x16) Sqrt() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i].Sqrt()
	}
	return result
}

// Normalize clamps every lane to [0.0, 1.0].
func (v F32x16) Normalize() F32x16 {
	zero := SplatF32x16(0)
	one := SplatF32x16(1)
	return v.Max(zero).Min(one)
}

// Lane returns the value at flat index i in [0, 16).
func (v F32x16) Lane(i int) float32 {
	return v[i/4][i%4]
}

// SaveToU16x16 truncates each lane to a uint16, writing the result into out.
// Values outside [0, 65535] are clamped rather than wrapping, since the
// pipeline only ever calls this after rounding a value meant to land in
// [0, 255].
func (v F32x16) SaveToU16x16(out *U16x16) {
	for i := 0; i < 16; i++ {
		f := v.Lane(i)
		switch {
		case f < 0:
			out[i] = 0
		case f > 65535:
			out[i] = 65535
		default:
			out[i] = uint16(f)
		}
	}
}
