package gradient

import "testing"

func within(got, want, eps float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestBuild_TwoStopBlackToWhite(t *testing.T) {
	ctx := Build([]Stop{
		{Offset: 0, R: 0, G: 0, B: 0, A: 1},
		{Offset: 1, R: 1, G: 1, B: 1, A: 1},
	})

	if ctx.Len != 2 {
		t.Fatalf("Len = %d, want 2", ctx.Len)
	}

	// Segment 0 ramps R from 0 to 1 across [0, 1]; segment 1 is flat white.
	if !within(ctx.Factors[0].R, 1, 1e-6) || !within(ctx.Biases[0].R, 0, 1e-6) {
		t.Errorf("segment 0 R = factor %v bias %v, want factor 1 bias 0", ctx.Factors[0].R, ctx.Biases[0].R)
	}
	if !within(ctx.Factors[1].R, 0, 1e-6) || !within(ctx.Biases[1].R, 1, 1e-6) {
		t.Errorf("segment 1 R = factor %v bias %v, want factor 0 bias 1", ctx.Factors[1].R, ctx.Biases[1].R)
	}
}

func TestBuild_SingleStopIsFlat(t *testing.T) {
	ctx := Build([]Stop{{Offset: 0.5, R: 1, G: 0, B: 0, A: 1}})
	if ctx.Len != 1 {
		t.Fatalf("Len = %d, want 1", ctx.Len)
	}
	if ctx.Biases[0].R != 1 {
		t.Errorf("flat stop R = %v, want 1", ctx.Biases[0].R)
	}
}

func TestBuild_DedupesCoincidentOffsets(t *testing.T) {
	ctx := Build([]Stop{
		{Offset: 0, R: 0},
		{Offset: 0, R: 0.5},
		{Offset: 1, R: 1},
	})
	if ctx.Len != 2 {
		t.Errorf("Len = %d, want 2 after deduping coincident offset 0", ctx.Len)
	}
}

func TestBuildEvenlySpaced2_MatchesGeneralPath(t *testing.T) {
	from := Stop{Offset: 0, R: 0, G: 0, B: 0, A: 1}
	to := Stop{Offset: 1, R: 1, G: 1, B: 1, A: 1}

	two := BuildEvenlySpaced2(from, to)
	full := Build([]Stop{from, to})

	if !within(two.Factor.R, full.Factors[0].R, 1e-6) || !within(two.Bias.R, full.Biases[0].R, 1e-6) {
		t.Errorf("evenly-spaced factor/bias diverges from the general path: got factor %v bias %v, want factor %v bias %v",
			two.Factor.R, two.Bias.R, full.Factors[0].R, full.Biases[0].R)
	}
}
