package pipeline

import "github.com/gogpu/lowp/internal/wide"

// gradient evaluates a multi-stop gradient. t (in (r,g)) is compared
// against ctx.TValues[1:] to find, per lane, how many stops it has passed;
// the resulting index selects which linear segment (factors[idx], biases[idx])
// to evaluate. Index 0 selects the first segment, used for every t below
// TValues[1].
//
// Comparisons use Go's native >=, which already returns false for any NaN
// operand, giving exactly the "NaN compares not >=, yields index 0" policy
// spec.md §9 requires — no special-casing needed.
func gradient(p *Record) {
	ctx := p.Ctx().(*GradientCtx)
	if ctx.Len == 0 {
		violation("gradient stage reached with a GradientCtx.Len of 0 at (%d, %d) — a gradient must have at least one stop", p.Dx, p.Dy)
	}

	t := join(&p.R, &p.G)
	var idx [16]uint16
	for i := 1; i < ctx.Len; i++ {
		tt := ctx.TValues[i]
		for lane := 0; lane < 16; lane++ {
			if t.Lane(lane) >= tt {
				idx[lane]++
			}
		}
	}

	gradientLookup(ctx, idx, t, &p.R, &p.G, &p.B, &p.A)
	p.next()
}

// evenlySpaced2StopGradient evaluates a degenerate two-stop gradient with a
// single scalar factor/bias pair and no stop lookup.
func evenlySpaced2StopGradient(p *Record) {
	ctx := p.Ctx().(*EvenlySpaced2StopGradientCtx)

	t := join(&p.R, &p.G)
	roundF32ToU16(
		mad(t, wide.SplatF32x16(ctx.Factor.R), wide.SplatF32x16(ctx.Bias.R)),
		mad(t, wide.SplatF32x16(ctx.Factor.G), wide.SplatF32x16(ctx.Bias.G)),
		mad(t, wide.SplatF32x16(ctx.Factor.B), wide.SplatF32x16(ctx.Bias.B)),
		mad(t, wide.SplatF32x16(ctx.Factor.A), wide.SplatF32x16(ctx.Bias.A)),
		&p.R, &p.G, &p.B, &p.A,
	)
	p.next()
}

// gradientLookup gathers factors[idx]/biases[idx] per lane and evaluates
// mad(t, factor, bias) per channel.
func gradientLookup(ctx *GradientCtx, idx [16]uint16, t wide.F32x16, r, g, b, a *wide.U16x16) {
	gather := func(sel func(ColorF32) float32) wide.F32x16 {
		var out wide.F32x16
		for lane := 0; lane < 16; lane++ {
			v := sel(ctx.Factors[idx[lane]])
			out[lane/4][lane%4] = v
		}
		return out
	}
	gatherBias := func(sel func(ColorF32) float32) wide.F32x16 {
		var out wide.F32x16
		for lane := 0; lane < 16; lane++ {
			v := sel(ctx.Biases[idx[lane]])
			out[lane/4][lane%4] = v
		}
		return out
	}

	fr := gather(func(c ColorF32) float32 { return c.R })
	fg := gather(func(c ColorF32) float32 { return c.G })
	fb := gather(func(c ColorF32) float32 { return c.B })
	fa := gather(func(c ColorF32) float32 { return c.A })

	br := gatherBias(func(c ColorF32) float32 { return c.R })
	bg := gatherBias(func(c ColorF32) float32 { return c.G })
	bb := gatherBias(func(c ColorF32) float32 { return c.B })
	ba := gatherBias(func(c ColorF32) float32 { return c.A })

	roundF32ToU16(mad(t, fr, br), mad(t, fg, bg), mad(t, fb, bb), mad(t, fa, ba), r, g, b, a)
}

// roundF32ToU16 normalizes r, g, b to [0, 1] (alpha is left unclamped,
// matching Skia's reference behavior per spec.md §4.E), scales to [0, 255]
// with +0.5 rounding, and truncates to u16x16.
//
// This may diverge from the reference by up to one fixed-point unit in the
// mirror-extend case; spec.md §9 accepts that divergence rather than
// "fixing" it.
func roundF32ToU16(rf, gf, bf, af wide.F32x16, r, g, b, a *wide.U16x16) {
	half := wide.SplatF32x16(0.5)
	scale := wide.SplatF32x16(255.0)

	rf = rf.Normalize().Mul(scale).Add(half)
	gf = gf.Normalize().Mul(scale).Add(half)
	bf = bf.Normalize().Mul(scale).Add(half)
	af = af.Mul(scale).Add(half)

	rf.SaveToU16x16(r)
	gf.SaveToU16x16(g)
	bf.SaveToU16x16(b)
	af.SaveToU16x16(a)
}
