// Package gradient builds internal/pipeline.GradientCtx and
// EvenlySpaced2StopGradientCtx values from a color-stop list.
//
// It sits upstream of the pipeline core: rather than walking stops per pixel
// the way the teacher's colorAtOffset does, it precomputes one
// factor/bias pair per segment so the pipeline's gradient stage only ever
// does a per-lane index lookup and a single multiply-add (spec.md's
// "factors/biases/t_values" data model).
package gradient
