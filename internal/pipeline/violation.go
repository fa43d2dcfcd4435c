package pipeline

import "fmt"

// violation panics with a descriptive message for a pipeline contract
// violation — conditions spec.md §7 classifies as programming errors, never
// recoverable at runtime: an out-of-range tail, an unsupported stage
// reached during dispatch, or a gradient context with no stops.
func violation(format string, args ...any) {
	panic("pipeline: " + fmt.Sprintf(format, args...))
}
