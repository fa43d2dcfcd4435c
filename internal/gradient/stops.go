package gradient

import (
	"sort"

	"github.com/gogpu/lowp/internal/pipeline"
)

// Stop is a premultiplied color at a position in [0, 1]. Wrap-mode extension
// for t outside [0, 1] (the teacher's ExtendMode) is not this package's
// concern: the pipeline's own wrap stages (pad_x1/repeat_x1/reflect_x1)
// already normalize t before it reaches the gradient stage.
type Stop struct {
	Offset     float32
	R, G, B, A float32 // premultiplied, each in [0, 1]
}

// Build constructs a GradientCtx from stops sorted by Offset, deduplicating
// coincident offsets by keeping the first. Wrap-mode extension (repeat,
// reflect) is the caller's responsibility upstream of the pipeline — the
// transform stage's wrap functions (pad_x1/repeat_x1/reflect_x1) already
// normalize t into [0, 1] before it reaches the gradient stage, matching
// spec.md §4.D's placement of wrap handling ahead of gradient evaluation.
func Build(stops []Stop) *pipeline.GradientCtx {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	sorted = dedupe(sorted)

	if len(sorted) == 0 {
		return &pipeline.GradientCtx{Len: 0}
	}
	if len(sorted) == 1 {
		flat := colorOf(sorted[0])
		return &pipeline.GradientCtx{
			Factors: []pipeline.ColorF32{{}},
			Biases:  []pipeline.ColorF32{flat},
			TValues: []float32{sorted[0].Offset},
			Len:     1,
		}
	}

	n := len(sorted)
	factors := make([]pipeline.ColorF32, n)
	biases := make([]pipeline.ColorF32, n)
	tValues := make([]float32, n)

	// Index 0 covers t below the first internal boundary (t_values[1]): the
	// ramp between stop 0 and stop 1.
	factors[0], biases[0] = segment(sorted[0], sorted[1])
	tValues[0] = sorted[0].Offset

	for i := 1; i < n-1; i++ {
		factors[i], biases[i] = segment(sorted[i], sorted[i+1])
		tValues[i] = sorted[i].Offset
	}

	// The last index is the flat color at/after the final stop.
	last := colorOf(sorted[n-1])
	factors[n-1] = pipeline.ColorF32{}
	biases[n-1] = last
	tValues[n-1] = sorted[n-1].Offset

	return &pipeline.GradientCtx{Factors: factors, Biases: biases, TValues: tValues, Len: n}
}

// BuildEvenlySpaced2 builds the degenerate two-stop gradient context used
// when a gradient has exactly two stops at t=0 and t=1 (the common case for
// simple linear gradients), skipping the per-lane stop-index lookup.
func BuildEvenlySpaced2(from, to Stop) *pipeline.EvenlySpaced2StopGradientCtx {
	factor, bias := segment(from, to)
	return &pipeline.EvenlySpaced2StopGradientCtx{Factor: factor, Bias: bias}
}

func segment(a, b Stop) (factor, bias pipeline.ColorF32) {
	span := b.Offset - a.Offset
	if span == 0 {
		return pipeline.ColorF32{}, colorOf(a)
	}
	ca, cb := colorOf(a), colorOf(b)
	factor = pipeline.ColorF32{
		R: (cb.R - ca.R) / span,
		G: (cb.G - ca.G) / span,
		B: (cb.B - ca.B) / span,
		A: (cb.A - ca.A) / span,
	}
	bias = pipeline.ColorF32{
		R: ca.R - factor.R*a.Offset,
		G: ca.G - factor.G*a.Offset,
		B: ca.B - factor.B*a.Offset,
		A: ca.A - factor.A*a.Offset,
	}
	return factor, bias
}

func colorOf(s Stop) pipeline.ColorF32 {
	return pipeline.ColorF32{R: s.R, G: s.G, B: s.B, A: s.A}
}

func dedupe(sorted []Stop) []Stop {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s.Offset == out[len(out)-1].Offset {
			continue
		}
		out = append(out, s)
	}
	return out
}
