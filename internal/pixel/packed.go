package pixel

// Packed8888 is one premultiplied RGBA8 pixel, interleaved as it sits in a
// Pixmap's backing buffer: R, G, B, A bytes in that order.
type Packed8888 struct {
	R, G, B, A uint8
}

// Transparent is the zero pixel, used to pad tail scratch buffers.
var Transparent = Packed8888{}

// Width is the pipeline's lane width: every stage processes this many
// pixels per full-width invocation.
const Width = 16
