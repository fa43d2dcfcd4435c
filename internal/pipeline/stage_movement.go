package pipeline

import "github.com/gogpu/lowp/internal/wide"

// moveSourceToDestination copies the source color planes into the
// destination planes.
func moveSourceToDestination(p *Record) {
	p.DR, p.DG, p.DB, p.DA = p.R, p.G, p.B, p.A
	p.next()
}

// moveDestinationToSource copies the destination color planes into the
// source planes.
func moveDestinationToSource(p *Record) {
	p.R, p.G, p.B, p.A = p.DR, p.DG, p.DB, p.DA
	p.next()
}

// premultiply multiplies r, g, b by a and normalizes with div255; alpha is
// untouched.
func premultiply(p *Record) {
	p.R = div255(p.R.Mul(p.A))
	p.G = div255(p.G.Mul(p.A))
	p.B = div255(p.B.Mul(p.A))
	p.next()
}

// uniformColor seeds every lane with the context's constant color.
func uniformColor(p *Record) {
	ctx := p.Ctx().(*UniformColorCtx)
	p.R = wide.SplatU16(ctx.RGBA[0])
	p.G = wide.SplatU16(ctx.RGBA[1])
	p.B = wide.SplatU16(ctx.RGBA[2])
	p.A = wide.SplatU16(ctx.RGBA[3])
	p.next()
}

// iota16 holds the per-lane 0.5, 1.5, ... 15.5 offsets seedShader adds to
// dx to produce each lane's pixel-center x coordinate.
var iota16 = wide.F32x16{
	{0.5, 1.5, 2.5, 3.5},
	{4.5, 5.5, 6.5, 7.5},
	{8.5, 9.5, 10.5, 11.5},
	{12.5, 13.5, 14.5, 15.5},
}

// seedShader writes the pixel-center coordinates for this lane group into
// (r,g)=x and (b,a)=y, reinterpreted via split. x[i] = dx + i + 0.5;
// y[i] = dy + 0.5 in every lane.
func seedShader(p *Record) {
	x := wide.SplatF32x16(float32(p.Dx)).Add(iota16)
	y := wide.SplatF32x16(float32(p.Dy) + 0.5)
	split(&x, &p.R, &p.G)
	split(&y, &p.B, &p.A)
	p.next()
}
