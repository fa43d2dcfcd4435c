package lowp

import "image/color"

// Color is a premultiplied RGBA color with components in [0, 255], the
// representation internal/pipeline.UniformColorCtx and the pixel package
// operate on directly — unlike the teacher's straight-alpha RGBA, the
// pipeline core never touches unpremultiplied color.
type Color struct {
	R, G, B, A uint8
}

// Opaque builds a fully opaque premultiplied color from straight RGB.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromStraight premultiplies a straight-alpha RGBA color, rounding each
// channel the same way the pipeline rounds fixed-point results (+0.5, then
// truncate).
func FromStraight(r, g, b, a uint8) Color {
	mul := func(c uint8) uint8 {
		return uint8((uint16(c)*uint16(a) + 127) / 255)
	}
	return Color{R: mul(r), G: mul(g), B: mul(b), A: a}
}

// FromColor converts a standard library color.Color (straight alpha, as
// the image package defines it) to a premultiplied Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromStraight(n.R, n.G, n.B, n.A)
}

// RGBA16 returns the color as the [4]uint16 layout
// internal/pipeline.UniformColorCtx expects.
func (c Color) RGBA16() [4]uint16 {
	return [4]uint16{uint16(c.R), uint16(c.G), uint16(c.B), uint16(c.A)}
}
