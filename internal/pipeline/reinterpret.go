package pipeline

import (
	"unsafe"

	"github.com/gogpu/lowp/internal/wide"
)

// split reinterprets the 64-byte F32x16 as two 32-byte U16x16 registers:
// the first half becomes lo, the second half becomes hi. This is not a
// numerical conversion — it is the byte-wise repacking spec.md §3 and §9
// describe, used to smuggle float coordinates through the (r,g) and (b,a)
// lane registers. It requires F32x16, and two U16x16, to have identical
// total byte width (64) with no padding, which wide.F32x16 and wide.U16x16
// satisfy by construction (plain fixed-size arrays of fixed-size numeric
// types).
func split(v *wide.F32x16, lo, hi *wide.U16x16) {
	const half = unsafe.Sizeof(wide.U16x16{})
	src := unsafe.Pointer(v)
	*lo = *(*wide.U16x16)(src)
	*hi = *(*wide.U16x16)(unsafe.Add(src, half))
}

// join is the inverse of split.
func join(lo, hi *wide.U16x16) wide.F32x16 {
	var v wide.F32x16
	const half = unsafe.Sizeof(wide.U16x16{})
	dst := unsafe.Pointer(&v)
	*(*wide.U16x16)(dst) = *lo
	*(*wide.U16x16)(unsafe.Add(dst, half)) = *hi
	return v
}
