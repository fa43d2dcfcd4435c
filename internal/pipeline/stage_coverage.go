package pipeline

import "github.com/gogpu/lowp/internal/wide"

// maskCoverageLane builds the two-value mask lane the lowp path supports:
// only lanes 0 and 1 carry real mask bytes, matching spec.md §4.D's note
// that the lowp mask path supports at most two distinct mask values per
// lane group.
func maskCoverageLane(ctx MaskCtx, dx, dy, tail int) wide.U16x16 {
	data := ctx.CopyAtXY(dx, dy, tail)
	var c wide.U16x16
	c[0] = uint16(data[0])
	c[1] = uint16(data[1])
	return c
}

// scaleU8 multiplies all four channels by the mask, then div255.
func scaleU8(p *Record) {
	ctx := p.Ctx().(MaskCtx)
	c := maskCoverageLane(ctx, p.Dx, p.Dy, p.Tail)

	p.R = div255(p.R.Mul(c))
	p.G = div255(p.G.Mul(c))
	p.B = div255(p.B.Mul(c))
	p.A = div255(p.A.Mul(c))
	p.next()
}

// lerpU8 blends between destination and source by the mask.
func lerpU8(p *Record) {
	ctx := p.Ctx().(MaskCtx)
	c := maskCoverageLane(ctx, p.Dx, p.Dy, p.Tail)

	p.R = lerp(p.DR, p.R, c)
	p.G = lerp(p.DG, p.G, c)
	p.B = lerp(p.DB, p.B, c)
	p.A = lerp(p.DA, p.A, c)
	p.next()
}

// scale1Float is scaleU8 with a scalar coverage value converted via
// fromFloat instead of a mask lookup.
func scale1Float(p *Record) {
	c := fromFloat(*p.Ctx().(*float32))

	p.R = div255(p.R.Mul(c))
	p.G = div255(p.G.Mul(c))
	p.B = div255(p.B.Mul(c))
	p.A = div255(p.A.Mul(c))
	p.next()
}

// lerp1Float is lerpU8 with a scalar coverage value converted via
// fromFloat instead of a mask lookup.
func lerp1Float(p *Record) {
	c := fromFloat(*p.Ctx().(*float32))

	p.R = lerp(p.DR, p.R, c)
	p.G = lerp(p.DG, p.G, c)
	p.B = lerp(p.DB, p.B, c)
	p.A = lerp(p.DA, p.A, c)
	p.next()
}
