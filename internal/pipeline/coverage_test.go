package pipeline

import (
	"testing"

	"github.com/gogpu/lowp/internal/wide"
)

func TestScaleU8_ScalesAllChannelsByMaskLane0(t *testing.T) {
	program := []Slot{
		{Fn: scaleU8, Ctx: fakeMask{v0: 128}},
		{Fn: JustReturn},
	}

	var p Record
	p.R, p.G, p.B, p.A = wide.SplatU16(255), wide.SplatU16(200), wide.SplatU16(100), wide.SplatU16(50)
	p.Tail = Width
	p.run(program)

	want := func(c int) uint16 { return uint16((c*128 + 255) / 256) }
	if p.R[0] != want(255) || p.G[0] != want(200) || p.B[0] != want(100) || p.A[0] != want(50) {
		t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)", p.R[0], p.G[0], p.B[0], p.A[0],
			want(255), want(200), want(100), want(50))
	}
}

func TestScaleU8_ZeroMaskZeroesEverything(t *testing.T) {
	program := []Slot{
		{Fn: scaleU8, Ctx: fakeMask{v0: 0}},
		{Fn: JustReturn},
	}

	var p Record
	p.R, p.G, p.B, p.A = wide.SplatU16(255), wide.SplatU16(255), wide.SplatU16(255), wide.SplatU16(255)
	p.Tail = Width
	p.run(program)

	if p.R[0] != 0 || p.G[0] != 0 || p.B[0] != 0 || p.A[0] != 0 {
		t.Errorf("got (%d,%d,%d,%d), want (0,0,0,0)", p.R[0], p.G[0], p.B[0], p.A[0])
	}
}

func TestLerpU8_Endpoints(t *testing.T) {
	run := func(maskV0 uint8) (r, g, b, a uint16) {
		program := []Slot{
			{Fn: lerpU8, Ctx: fakeMask{v0: maskV0}},
			{Fn: JustReturn},
		}
		var p Record
		p.R, p.G, p.B, p.A = wide.SplatU16(200), wide.SplatU16(200), wide.SplatU16(200), wide.SplatU16(200)
		p.DR, p.DG, p.DB, p.DA = wide.SplatU16(10), wide.SplatU16(10), wide.SplatU16(10), wide.SplatU16(10)
		p.Tail = Width
		p.run(program)
		return p.R[0], p.G[0], p.B[0], p.A[0]
	}

	if r, g, b, a := run(0); r != 10 || g != 10 || b != 10 || a != 10 {
		t.Errorf("mask=0: got (%d,%d,%d,%d), want destination (10,10,10,10)", r, g, b, a)
	}
	if r, g, b, a := run(255); r != 200 || g != 200 || b != 200 || a != 200 {
		t.Errorf("mask=255: got (%d,%d,%d,%d), want source (200,200,200,200)", r, g, b, a)
	}
}

func TestScale1Float_MatchesScaleU8AtEquivalentCoverage(t *testing.T) {
	c := float32(128) / 255
	program := []Slot{
		{Fn: scale1Float, Ctx: &c},
		{Fn: JustReturn},
	}

	var p Record
	p.R, p.G, p.B, p.A = wide.SplatU16(255), wide.SplatU16(200), wide.SplatU16(100), wide.SplatU16(50)
	p.Tail = Width
	p.run(program)

	// fromFloat's rounding may land one fixed-point unit away from the
	// mask-byte path's scaleU8, so this only pins "in the right ballpark",
	// not bit equality between the two coverage representations.
	within1 := func(got, want int) bool {
		d := got - want
		return d >= -1 && d <= 1
	}
	if !within1(int(p.R[0]), 128) {
		t.Errorf("scale1Float red = %d, want ~128", p.R[0])
	}
}

func TestLerp1Float_Endpoints(t *testing.T) {
	run := func(c float32) (r uint16) {
		program := []Slot{
			{Fn: lerp1Float, Ctx: &c},
			{Fn: JustReturn},
		}
		var p Record
		p.R = wide.SplatU16(200)
		p.DR = wide.SplatU16(10)
		p.Tail = Width
		p.run(program)
		return p.R[0]
	}

	if got := run(0); got != 10 {
		t.Errorf("lerp1Float(0) = %d, want destination 10", got)
	}
	if got := run(1); got != 200 {
		t.Errorf("lerp1Float(1) = %d, want source 200", got)
	}
}
