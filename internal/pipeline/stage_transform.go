package pipeline

import "github.com/gogpu/lowp/internal/wide"

// transformStage reinterprets (r,g) and (b,a) as (x,y), applies the
// context's affine, and repacks the result.
func transformStage(p *Record) {
	ts := p.Ctx().(*Transform)
	sx, ky, kx, sy, tx, ty := ts.GetRow()

	x := join(&p.R, &p.G)
	y := join(&p.B, &p.A)

	nx := mad(x, wide.SplatF32x16(sx), mad(y, wide.SplatF32x16(kx), wide.SplatF32x16(tx)))
	ny := mad(x, wide.SplatF32x16(ky), mad(y, wide.SplatF32x16(sy), wide.SplatF32x16(ty)))

	split(&nx, &p.R, &p.G)
	split(&ny, &p.B, &p.A)
	p.next()
}

// padX1 clamps x to [0, 1].
func padX1(p *Record) {
	x := join(&p.R, &p.G)
	x = x.Normalize()
	split(&x, &p.R, &p.G)
	p.next()
}

// repeatX1 wraps x into [0, 1] by subtracting its floor.
func repeatX1(p *Record) {
	x := join(&p.R, &p.G)
	x = x.Sub(x.Floor()).Normalize()
	split(&x, &p.R, &p.G)
	p.next()
}

// reflectX1 mirrors x into [0, 1].
func reflectX1(p *Record) {
	x := join(&p.R, &p.G)
	one := wide.SplatF32x16(1)
	half := wide.SplatF32x16(0.5)
	two := func(v wide.F32x16) wide.F32x16 { return v.Add(v) }

	shifted := x.Sub(one)
	x = shifted.Sub(two(shifted.Mul(half).Floor())).Sub(one).Abs().Normalize()
	split(&x, &p.R, &p.G)
	p.next()
}

// xyToRadius replaces x with sqrt(x*x + y*y); y is left untouched.
func xyToRadius(p *Record) {
	x := join(&p.R, &p.G)
	y := join(&p.B, &p.A)
	r := x.Mul(x).Add(y.Mul(y)).Sqrt()
	split(&r, &p.R, &p.G)
	p.next()
}
