package pipeline

import (
	"testing"

	"github.com/gogpu/lowp/internal/wide"
)

// TestTransform_SeedThenAffine is spec.md §8 scenario 6: seed the shader at
// (dx=0, dy=0) then apply an affine (sx=2, sy=2, tx=10, ty=20); the first
// lane's pixel center (0.5, 0.5) should map to (2*0.5+10, 2*0.5+20) = (11, 21).
func TestTransform_SeedThenAffine(t *testing.T) {
	ts := &Transform{Sx: 2, Ky: 0, Kx: 0, Sy: 2, Tx: 10, Ty: 20}

	program := []Slot{
		{Fn: seedShader},
		{Fn: transformStage, Ctx: ts},
		{Fn: JustReturn},
	}

	var p Record
	p.Dx, p.Dy = 0, 0
	p.Tail = Width
	p.run(program)

	x := join(&p.R, &p.G)
	y := join(&p.B, &p.A)

	if got := x.Lane(0); got != 11 {
		t.Errorf("nx[0] = %v, want 11", got)
	}
	if got := y.Lane(0); got != 21 {
		t.Errorf("ny[0] = %v, want 21", got)
	}
}

// runX1Stage runs a single x-wrapping stage over one scalar x value,
// reading back lane 0.
func runX1Stage(t *testing.T, fn StageFn, xVal float32) float32 {
	t.Helper()

	xLane := wide.SplatF32x16(xVal)
	var lo, hi wide.U16x16
	split(&xLane, &lo, &hi)

	program := []Slot{
		{Fn: fn},
		{Fn: JustReturn},
	}
	var p Record
	p.R, p.G = lo, hi
	p.Tail = Width
	p.run(program)

	return join(&p.R, &p.G).Lane(0)
}

func TestRepeatX1_WrapsIntoUnitRange(t *testing.T) {
	cases := []struct {
		x    float32
		want float32
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{2.0, 0},
	}
	for _, tc := range cases {
		if got := runX1Stage(t, repeatX1, tc.x); got != tc.want {
			t.Errorf("repeatX1(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestReflectX1_MirrorsIntoUnitRange(t *testing.T) {
	cases := []struct {
		x    float32
		want float32
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{1.5, 0.5},
		{2, 0},
	}
	for _, tc := range cases {
		if got := runX1Stage(t, reflectX1, tc.x); got != tc.want {
			t.Errorf("reflectX1(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestXYToRadius_PythagoreanTriple(t *testing.T) {
	x := wide.SplatF32x16(3)
	y := wide.SplatF32x16(4)
	var xr, xg, yr, yg wide.U16x16
	split(&x, &xr, &xg)
	split(&y, &yr, &yg)

	program := []Slot{
		{Fn: xyToRadius},
		{Fn: JustReturn},
	}
	var p Record
	p.R, p.G, p.B, p.A = xr, xg, yr, yg
	p.Tail = Width
	p.run(program)

	if got := join(&p.R, &p.G).Lane(0); got != 5 {
		t.Errorf("xyToRadius(3,4) = %v, want 5", got)
	}
}

func TestPadX1_ClampsToUnitRange(t *testing.T) {
	x := wide.F32x16{
		{-1, 0, 0.5, 2},
	}
	var lo, hi wide.U16x16
	split(&x, &lo, &hi)

	program := []Slot{
		{Fn: padX1},
		{Fn: JustReturn},
	}
	var p Record
	p.R, p.G = lo, hi
	p.Tail = Width
	p.run(program)

	out := join(&p.R, &p.G)
	want := []float32{0, 0, 0.5, 1}
	for i, w := range want {
		if out.Lane(i) != w {
			t.Errorf("lane %d = %v, want %v", i, out.Lane(i), w)
		}
	}
}
