package pixel

import "github.com/gogpu/lowp/internal/wide"

// Load8888 splits Width premultiplied RGBA8 pixels into four planar lanes,
// zero-extending each 8-bit channel.
func Load8888(data *[Width]Packed8888, r, g, b, a *wide.U16x16) {
	for i := 0; i < Width; i++ {
		r[i] = uint16(data[i].R)
		g[i] = uint16(data[i].G)
		b[i] = uint16(data[i].B)
		a[i] = uint16(data[i].A)
	}
}

// Load8888Tail copies tail pixels into a Width-long scratch buffer prefilled
// with the transparent sentinel, then delegates to Load8888. This keeps
// Load8888's inner loop branch-free; the tail lanes carry sentinel pixels
// but callers must never store them back.
func Load8888Tail(tail int, data []Packed8888, r, g, b, a *wide.U16x16) {
	var tmp [Width]Packed8888
	copy(tmp[:tail], data[:tail])
	Load8888(&tmp, r, g, b, a)
}

// Store8888 is the inverse of Load8888.
func Store8888(r, g, b, a *wide.U16x16, data *[Width]Packed8888) {
	for i := 0; i < Width; i++ {
		data[i] = Packed8888{
			R: uint8(r[i]),
			G: uint8(g[i]),
			B: uint8(b[i]),
			A: uint8(a[i]),
		}
	}
}

// Store8888Tail writes exactly tail pixels and must not touch pixels beyond
// it. The loop is bounded by Width and breaks once tail pixels have been
// written.
func Store8888Tail(r, g, b, a *wide.U16x16, tail int, data []Packed8888) {
	for i := 0; i < Width; i++ {
		data[i] = Packed8888{
			R: uint8(r[i]),
			G: uint8(g[i]),
			B: uint8(b[i]),
			A: uint8(a[i]),
		}
		if i+1 == tail {
			break
		}
	}
}
