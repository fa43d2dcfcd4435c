package pipeline

import "github.com/gogpu/lowp/internal/wide"

// Record is the pipeline record (spec.md §3, component G): the lane
// registers, program cursor, and current invocation coordinates shared by
// every stage during one Start call. A Record is always constructed fresh
// on the calling goroutine's stack by the driver and never shared across
// goroutines — see spec.md §5.
type Record struct {
	program []Slot
	cursor  int

	// Source color planes: premultiplied source color in [0, 255], except
	// where intermediate math temporarily overflows into 16-bit space.
	R, G, B, A wide.U16x16

	// Destination color planes: pixels loaded from the target pixmap.
	DR, DG, DB, DA wide.U16x16

	// Tail is the number of valid lanes for this invocation; always Width
	// for aligned chunks.
	Tail int

	// Dx, Dy is the top-left pixel coordinate this invocation writes.
	Dx, Dy int
}

// Ctx returns the context bound to the currently executing stage's Slot,
// or nil if that stage has no context.
func (p *Record) Ctx() any {
	return p.program[p.cursor].Ctx
}

// next dispatches the next stage in the program. Every stage calls this
// exactly once, in tail position, so a long program does not grow the Go
// call stack proportionally to stage count on platforms where the
// compiler performs tail-call optimization; where it doesn't, program
// length is still bounded by the pipeline compiler, not by pixel count.
func (p *Record) next() {
	p.cursor++
	p.program[p.cursor].Fn(p)
}

// run begins a fresh dispatch of program starting at Slot 0.
func (p *Record) run(program []Slot) {
	if p.Tail < 1 || p.Tail > Width {
		violation("tail %d out of range [1, %d]", p.Tail, Width)
	}
	p.program = program
	p.cursor = 0
	program[0].Fn(p)
}
