// Package lowp implements a low-precision, fixed-point 2D raster pipeline:
// a stage-composed scanline rasterizer operating on 16-pixel-wide lanes of
// 16-bit fixed-point color, ported from tiny-skia/Skia's "lowp" backend.
//
// The pipeline itself lives in internal/pipeline as a table of composable
// stage functions (internal/pipeline.Stages); this package is the public
// façade: Pixmap and Mask adapt the pipeline's context interfaces to Go's
// standard image ecosystem, Transform exposes the affine constructors used
// to build internal/pipeline.Transform values, and RunTiled shards a
// pipeline run across goroutines by disjoint row ranges.
//
// Logging is opt-in and silent by default; see SetLogger.
package lowp
