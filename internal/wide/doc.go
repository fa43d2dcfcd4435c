// Package wide provides fixed-width, SIMD-friendly lane types for the lowp
// raster pipeline.
//
// This package implements the wide types (U16x16, F32x4, F32x16) that let the
// Go compiler auto-vectorize pipeline stages. By using fixed-size arrays and
// simple loops instead of explicit SIMD intrinsics, these types generate
// vector instructions on supported architectures (SSE, AVX, NEON) without any
// unsafe or assembly code in this package.
//
// # Wide Types
//
// U16x16: 16 uint16 lanes, used for 8-bit-per-channel premultiplied color math.
// F32x4: 4 float32 lanes, the SoA building block for F32x16.
// F32x16: 16 float32 lanes stored as four F32x4, used for shader coordinates
// and gradient math.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization.
//   - Avoid unsafe and assembly; rely on compiler optimization.
//   - Keep functions small and inlineable.
package wide
