package wide

import "math"

// F32x4 represents 4 float32 lanes, the SoA building block of F32x16.
type F32x4 [4]float32

// SplatF32x4 creates an F32x4 with every lane set to n.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs lane-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs lane-wise division.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Min performs a lane-wise minimum.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Min(float64(v[i]), float64(other[i])))
	}
	return result
}

// Max performs a lane-wise maximum.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Max(float64(v[i]), float64(other[i])))
	}
	return result
}

// Abs returns the lane-wise absolute value.
func (v F32x4) Abs() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Abs(float64(v[i])))
	}
	return result
}

// Floor returns the lane-wise floor.
func (v F32x4) Floor() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Floor(float64(v[i])))
	}
	return result
}

// Sqrt returns the lane-wise square root.
func (v F32x4) Sqrt() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}
