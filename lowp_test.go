package lowp

import (
	"testing"

	"github.com/gogpu/lowp/internal/pipeline"
)

// TestRunTiled_UniformColorOverWholeRect fills a small pixmap with an opaque
// color via RunTiled (source-over onto a cleared destination) and checks
// every pixel landed correctly, including the tail column on non-multiple-
// of-16 widths.
func TestRunTiled_UniformColorOverWholeRect(t *testing.T) {
	const w, h = 40, 5 // 40 isn't a multiple of pipeline.Width (16): exercises the tail path.
	pm := NewPixmap(w, h)

	color := &pipeline.UniformColorCtx{RGBA: [4]uint16{10, 20, 30, 255}}
	full := []pipeline.Slot{
		{Fn: pipeline.Stages[pipeline.StageUniformColor], Ctx: color},
		{Fn: pipeline.SourceOverRgbaTail, Ctx: pm},
		{Fn: pipeline.JustReturn},
	}
	tail := []pipeline.Slot{
		{Fn: pipeline.Stages[pipeline.StageUniformColor], Ctx: color},
		{Fn: pipeline.SourceOverRgbaTail, Ctx: pm},
		{Fn: pipeline.JustReturn},
	}

	RunTiled(full, tail, pipeline.Rect{X: 0, Y: 0, Right: w, Bottom: h}, 4)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pm.At(x, y)
			r, g, b, a := c.RGBA()
			if uint8(r>>8) != 10 || uint8(g>>8) != 20 || uint8(b>>8) != 30 || uint8(a>>8) != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want (10,20,30,255)", x, y, r>>8, g>>8, b>>8, a>>8)
			}
		}
	}
}

// TestRunTiled_ShardedMatchesStart checks that sharding across workers
// produces the same result as a direct, unsharded Start call.
func TestRunTiled_ShardedMatchesStart(t *testing.T) {
	const w, h = 32, 8
	direct := NewPixmap(w, h)
	tiled := NewPixmap(w, h)

	color := &pipeline.UniformColorCtx{RGBA: [4]uint16{200, 5, 90, 128}}
	buildProgram := func(pm *Pixmap) ([]pipeline.Slot, []pipeline.Slot) {
		full := []pipeline.Slot{
			{Fn: pipeline.Stages[pipeline.StageUniformColor], Ctx: color},
			{Fn: pipeline.SourceOverRgbaTail, Ctx: pm},
			{Fn: pipeline.JustReturn},
		}
		return full, full
	}

	df, dt := buildProgram(direct)
	pipeline.Start(df, dt, pipeline.Rect{X: 0, Y: 0, Right: w, Bottom: h})

	tf, tt := buildProgram(tiled)
	RunTiled(tf, tt, pipeline.Rect{X: 0, Y: 0, Right: w, Bottom: h}, 3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if direct.At(x, y) != tiled.At(x, y) {
				t.Fatalf("pixel (%d,%d) diverges between Start and RunTiled", x, y)
			}
		}
	}
}
