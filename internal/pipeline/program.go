// Package pipeline implements the low-precision (lowp) raster pipeline: a
// stage-composed, scanline-batched pixel processing engine that executes a
// compiled program of per-pixel operations over fixed-width lanes of pixels
// using 16-bit fixed-point arithmetic.
package pipeline

// StageFn is the signature every stage implements: read lane state (and,
// optionally, a context) from the pipeline record, write lane state, and
// dispatch the next stage.
type StageFn func(p *Record)

// Slot is one program entry: a stage function paired with its context, if
// it needs one. This is the tagged-entry rewrite spec.md §9 recommends in
// place of the source's raw alternating pointer stream — pairing a stage
// with its own context in a single Slot makes the "stage consumes 1 or 2
// program entries" distinction in spec.md §3/§4.G an implementation detail
// of this type rather than something callers or stage bodies need to track:
// every stage simply advances to the next Slot.
type Slot struct {
	Fn  StageFn
	Ctx any
}

// StageTag indexes the Stages table below, in the same order as the
// pipeline compiler's Stage enum (spec.md §6).
type StageTag int

const (
	StageMoveSourceToDestination StageTag = iota
	StageMoveDestinationToSource
	stageClamp0 // highp-only
	stageClampA // highp-only
	StagePremultiply
	StageUniformColor
	StageSeedShader
	StageLoadDst
	StageStore
	stageGather // highp-only
	StageScaleU8
	StageLerpU8
	StageScale1Float
	StageLerp1Float
	StageDestinationAtop
	StageDestinationIn
	StageDestinationOut
	StageDestinationOver
	StageSourceAtop
	StageSourceIn
	StageSourceOut
	StageSourceOver
	StageClear
	StageModulate
	StageMultiply
	StagePlus
	StageScreen
	StageXor
	stageColorBurn  // unsupported in lowp
	stageColorDodge // unsupported in lowp
	StageDarken
	StageDifference
	StageExclusion
	StageHardLight
	StageLighten
	StageOverlay
	stageSoftLight  // unsupported in lowp
	stageHue        // unsupported in lowp
	stageSaturation // unsupported in lowp
	stageColor      // unsupported in lowp
	stageLuminosity // unsupported in lowp
	StageSourceOverRgba
	StageTransform
	stageReflectX // highp-only
	stageReflectY // highp-only
	stageRepeatX  // highp-only
	stageRepeatY  // highp-only
	stageBilinear // highp-only
	stageBicubic  // highp-only
	StagePadX1
	StageReflectX1
	StageRepeatX1
	StageGradient
	StageEvenlySpaced2StopGradient
	StageXYToRadius
	stageXYTo2PtConicalFocalOnCircle // highp-only
	stageXYTo2PtConicalWellBehaved   // highp-only
	stageXYTo2PtConicalGreater       // highp-only
	stageMask2PtConicalDegenerates   // highp-only
	stageApplyVectorMask             // highp-only

	stageCount
)

// StageCount is the number of entries in Stages.
const StageCount = int(stageCount)

// Stages is the ordered stage table exposed to the pipeline compiler. Every
// entry for a stage this lowp pipeline doesn't implement (because it needs
// float precision, or because Skia's lowp path doesn't support it either)
// is the sentinel NullFn; its presence in an executing lowp program is a
// compiler bug per spec.md §7.
var Stages = [stageCount]StageFn{
	StageMoveSourceToDestination:      moveSourceToDestination,
	StageMoveDestinationToSource:      moveDestinationToSource,
	stageClamp0:                       NullFn,
	stageClampA:                       NullFn,
	StagePremultiply:                  premultiply,
	StageUniformColor:                 uniformColor,
	StageSeedShader:                   seedShader,
	StageLoadDst:                      loadDst,
	StageStore:                        store,
	stageGather:                       NullFn,
	StageScaleU8:                      scaleU8,
	StageLerpU8:                       lerpU8,
	StageScale1Float:                  scale1Float,
	StageLerp1Float:                   lerp1Float,
	StageDestinationAtop:              destinationAtop,
	StageDestinationIn:                destinationIn,
	StageDestinationOut:               destinationOut,
	StageDestinationOver:              destinationOver,
	StageSourceAtop:                   sourceAtop,
	StageSourceIn:                     sourceIn,
	StageSourceOut:                    sourceOut,
	StageSourceOver:                   sourceOver,
	StageClear:                        clear,
	StageModulate:                     modulate,
	StageMultiply:                     multiply,
	StagePlus:                         plus,
	StageScreen:                       screen,
	StageXor:                          xor,
	stageColorBurn:                    NullFn,
	stageColorDodge:                   NullFn,
	StageDarken:                       darken,
	StageDifference:                   difference,
	StageExclusion:                    exclusion,
	StageHardLight:                    hardLight,
	StageLighten:                      lighten,
	StageOverlay:                      overlay,
	stageSoftLight:                    NullFn,
	stageHue:                          NullFn,
	stageSaturation:                   NullFn,
	stageColor:                        NullFn,
	stageLuminosity:                   NullFn,
	StageSourceOverRgba:               sourceOverRgba,
	StageTransform:                    transformStage,
	stageReflectX:                     NullFn,
	stageReflectY:                     NullFn,
	stageRepeatX:                      NullFn,
	stageRepeatY:                      NullFn,
	stageBilinear:                     NullFn,
	stageBicubic:                      NullFn,
	StagePadX1:                        padX1,
	StageReflectX1:                    reflectX1,
	StageRepeatX1:                     repeatX1,
	StageGradient:                     gradient,
	StageEvenlySpaced2StopGradient:    evenlySpaced2StopGradient,
	StageXYToRadius:                   xyToRadius,
	stageXYTo2PtConicalFocalOnCircle:  NullFn,
	stageXYTo2PtConicalWellBehaved:    NullFn,
	stageXYTo2PtConicalGreater:        NullFn,
	stageMask2PtConicalDegenerates:    NullFn,
	stageApplyVectorMask:              NullFn,
}

// FnPtr returns an opaque identity for a stage function, suitable for
// equality comparisons via FnPtrEq. Go gives no portable way to compare
// func values directly, so this uses reflect to recover the underlying
// code pointer — safe for the plain top-level stage functions that are
// ever placed in a program, but not a general closure-identity mechanism.
func FnPtr(f StageFn) uintptr {
	return reflectFuncPointer(f)
}

// FnPtrEq reports whether f1 and f2 are the same stage function. The
// pipeline compiler uses this to recognize which stages it has already
// emitted (e.g. to fuse load_dst+source_over into source_over_rgba).
func FnPtrEq(f1, f2 StageFn) bool {
	return FnPtr(f1) == FnPtr(f2)
}

// LoadDstTail, StoreTail and SourceOverRgbaTail are the tail-program
// counterparts of LoadDst, Store and SourceOverRgba. They are not part of
// the Stages table (the pipeline compiler selects them directly when
// building a tail program, exactly as the full-width table entries are
// selected for aligned chunks) — see spec.md §4.F.
var (
	LoadDstTail        StageFn = loadDstTail
	StoreTail          StageFn = storeTail
	SourceOverRgbaTail StageFn = sourceOverRgbaTail
)

// JustReturn is the terminal stage: a no-op that ends dispatch.
func JustReturn(p *Record) {}

// NullFn is the placeholder for stages this lowp pipeline doesn't support.
// Its presence in an executing program indicates a bug in whatever built
// the program, per spec.md §7.
func NullFn(p *Record) {
	violation("null_fn stage executed at (%d, %d) — the compiled program references a stage the lowp pipeline does not implement", p.Dx, p.Dy)
}
