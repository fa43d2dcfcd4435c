package pipeline

import "github.com/gogpu/lowp/internal/wide"

// blendChannel is the per-channel formula shared by every plain Porter-Duff
// and separable blend: given this channel's source (s) and destination (d)
// values plus the scalar source/destination alpha lanes, produce the
// blended channel value.
type blendChannel func(s, d, sa, da wide.U16x16) wide.U16x16

// applyBlend runs f independently over r, g, b and a — the "plain" blend
// shape from spec.md §4.E, used by every Porter-Duff operator and by plus,
// modulate, multiply and screen.
func applyBlend(p *Record, f blendChannel) {
	p.R = f(p.R, p.DR, p.A, p.DA)
	p.G = f(p.G, p.DG, p.A, p.DA)
	p.B = f(p.B, p.DB, p.A, p.DA)
	p.A = f(p.A, p.DA, p.A, p.DA)
	p.next()
}

// applyColorOnlyBlend runs f over the color channels only; alpha follows
// the "source-over alpha" rule a := a + div255(da*inv(a)). This is the
// shape used by darken, lighten, exclusion, difference, hard-light and
// overlay.
func applyColorOnlyBlend(p *Record, f blendChannel) {
	p.R = f(p.R, p.DR, p.A, p.DA)
	p.G = f(p.G, p.DG, p.A, p.DA)
	p.B = f(p.B, p.DB, p.A, p.DA)
	p.A = p.A.Add(div255(p.DA.Mul(inv(p.A))))
	p.next()
}

func clear(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return wide.SplatU16(0)
	})
}

func sourceAtop(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(da).Add(d.Mul(inv(sa))))
	})
}

func destinationAtop(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(d.Mul(sa).Add(s.Mul(inv(da))))
	})
}

func sourceIn(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(da))
	})
}

func destinationIn(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(d.Mul(sa))
	})
}

func sourceOut(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(inv(da)))
	})
}

func destinationOut(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(d.Mul(inv(sa)))
	})
}

func sourceOver(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(div255(d.Mul(inv(sa))))
	})
}

func destinationOver(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return d.Add(div255(s.Mul(inv(da))))
	})
}

func modulate(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(d))
	})
}

func multiply(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(inv(da)).Add(d.Mul(inv(sa))).Add(s.Mul(d)))
	})
}

func screen(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Sub(div255(s.Mul(d)))
	})
}

func xor(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return div255(s.Mul(inv(da)).Add(d.Mul(inv(sa))))
	})
}

func plus(p *Record) {
	applyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Min(wide.SplatU16(255))
	})
}

func darken(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Sub(div255(s.Mul(da).Max(d.Mul(sa))))
	})
}

func lighten(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Sub(div255(s.Mul(da).Min(d.Mul(sa))))
	})
}

func exclusion(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Sub(wide.SplatU16(2).Mul(div255(s.Mul(d))))
	})
}

func difference(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		return s.Add(d).Sub(wide.SplatU16(2).Mul(div255(s.Mul(da).Min(d.Mul(sa)))))
	})
}

func hardLight(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		two := wide.SplatU16(2)
		onTrue := two.Mul(s).Mul(d)
		onFalse := sa.Mul(da).Sub(two.Mul(sa.Sub(s)).Mul(da.Sub(d)))
		selected := s.Add(s).CmpLE(sa).IfThenElse(onTrue, onFalse)
		return div255(s.Mul(inv(da)).Add(d.Mul(inv(sa))).Add(selected))
	})
}

func overlay(p *Record) {
	applyColorOnlyBlend(p, func(s, d, sa, da wide.U16x16) wide.U16x16 {
		two := wide.SplatU16(2)
		onTrue := two.Mul(s).Mul(d)
		onFalse := sa.Mul(da).Sub(two.Mul(sa.Sub(s)).Mul(da.Sub(d)))
		selected := d.Add(d).CmpLE(da).IfThenElse(onTrue, onFalse)
		return div255(s.Mul(inv(da)).Add(d.Mul(inv(sa))).Add(selected))
	})
}
