package lowp

import (
	"runtime"
	"sync"

	"github.com/gogpu/lowp/internal/pipeline"
)

// RunTiled runs the same compiled program over rect, sharded into
// horizontal row bands across workers goroutines (0 or negative means
// runtime.GOMAXPROCS(0)). Each goroutine gets its own Rect and therefore its
// own internal/pipeline.Record — the pipeline core never shares a Record
// across goroutines, matching spec.md §5's "never shared across threads"
// invariant — so no locking is needed; sync.WaitGroup only joins completion.
//
// This mirrors the row-sharding convention of the teacher's tile-based
// worker pool, simplified to plain row bands since the lowp pipeline already
// walks one row at a time internally and gains nothing from 2D tiling.
func RunTiled(full, tail []pipeline.Slot, rect pipeline.Rect, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := rect.Bottom - rect.Y
	if rows <= 0 {
		return
	}
	if workers > rows {
		workers = rows
	}

	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := rect.Y; start < rect.Bottom; start += band {
		end := start + band
		if end > rect.Bottom {
			end = rect.Bottom
		}

		sub := pipeline.Rect{X: rect.X, Y: start, Right: rect.Right, Bottom: end}
		Logger().Debug("lowp: scheduling row band", "y0", sub.Y, "y1", sub.Bottom, "x0", sub.X, "x1", sub.Right)
		wg.Add(1)
		go func(r pipeline.Rect) {
			defer wg.Done()
			pipeline.Start(full, tail, r)
		}(sub)
	}
	wg.Wait()
}
