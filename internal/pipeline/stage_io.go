package pipeline

import "github.com/gogpu/lowp/internal/pixel"

// loadDst loads Width destination pixels at (dx, dy) into the destination
// planes.
func loadDst(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixel.Load8888(ctx.Slice16AtXY(p.Dx, p.Dy), &p.DR, &p.DG, &p.DB, &p.DA)
	p.next()
}

// loadDstTail is the tail variant of loadDst.
func loadDstTail(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixel.Load8888Tail(p.Tail, ctx.SliceAtXY(p.Dx, p.Dy), &p.DR, &p.DG, &p.DB, &p.DA)
	p.next()
}

// store writes the source color planes to Width pixels at (dx, dy).
func store(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixel.Store8888(&p.R, &p.G, &p.B, &p.A, ctx.Slice16AtXY(p.Dx, p.Dy))
	p.next()
}

// storeTail is the tail variant of store.
func storeTail(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixel.Store8888Tail(&p.R, &p.G, &p.B, &p.A, p.Tail, ctx.SliceAtXY(p.Dx, p.Dy))
	p.next()
}

// sourceOverRgba is a fused load+source-over+store fast path that avoids a
// separate load/store pair for the common case of compositing a shader's
// output straight onto the destination with the default blend mode.
func sourceOverRgba(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixels := ctx.Slice16AtXY(p.Dx, p.Dy)
	pixel.Load8888(pixels, &p.DR, &p.DG, &p.DB, &p.DA)

	invSA := inv(p.A)
	p.R = p.R.Add(div255(p.DR.Mul(invSA)))
	p.G = p.G.Add(div255(p.DG.Mul(invSA)))
	p.B = p.B.Add(div255(p.DB.Mul(invSA)))
	p.A = p.A.Add(div255(p.DA.Mul(invSA)))

	pixel.Store8888(&p.R, &p.G, &p.B, &p.A, pixels)
	p.next()
}

// sourceOverRgbaTail is the tail variant of sourceOverRgba.
func sourceOverRgbaTail(p *Record) {
	ctx := p.Ctx().(PixelsCtx)
	pixels := ctx.SliceAtXY(p.Dx, p.Dy)
	pixel.Load8888Tail(p.Tail, pixels, &p.DR, &p.DG, &p.DB, &p.DA)

	invSA := inv(p.A)
	p.R = p.R.Add(div255(p.DR.Mul(invSA)))
	p.G = p.G.Add(div255(p.DG.Mul(invSA)))
	p.B = p.B.Add(div255(p.DB.Mul(invSA)))
	p.A = p.A.Add(div255(p.DA.Mul(invSA)))

	pixel.Store8888Tail(&p.R, &p.G, &p.B, &p.A, p.Tail, pixels)
	p.next()
}
