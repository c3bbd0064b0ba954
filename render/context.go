package render

import (
	"math"

	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	World *engine.World
	State *engine.GameState

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// HUDRows are reserved at the top, the playfield starts below them
	HUDRows int

	// View rectangle in world coordinates
	ViewLeft   float64
	ViewTop    float64
	ViewWidth  float64
	ViewHeight float64

	// ShakeX is the horizontal cell offset of the current shake frame
	ShakeX int
}

// NewRenderContext snapshots the camera of a session for a terminal of the given size
func NewRenderContext(ctx *engine.GameContext, width, height int) RenderContext {
	rc := RenderContext{
		World:        ctx.World,
		State:        ctx.State,
		ScreenWidth:  width,
		ScreenHeight: height,
		HUDRows:      parameter.HUDRows,
		ViewLeft:     ctx.ViewLeft(),
		ViewTop:      ctx.State.ScrollY,
		ViewWidth:    ctx.Tuning.ViewWidth(),
		ViewHeight:   ctx.Tuning.ViewHeight(),
	}
	if ctx.State.ShakeRemaining > 0 {
		// Alternate sides every step while the window is open
		rc.ShakeX = parameter.ShakeCells
		if ctx.State.StepCount%2 == 0 {
			rc.ShakeX = -parameter.ShakeCells
		}
	}
	return rc
}

// PlayfieldRows is the number of rows available below the HUD
func (rc RenderContext) PlayfieldRows() int {
	if rc.ScreenHeight <= rc.HUDRows {
		return 0
	}
	return rc.ScreenHeight - rc.HUDRows
}

// Column maps a world X to a screen column, shake included
func (rc RenderContext) Column(x float64) int {
	if rc.ViewWidth <= 0 {
		return 0
	}
	return int(math.Floor((x-rc.ViewLeft)*float64(rc.ScreenWidth)/rc.ViewWidth)) + rc.ShakeX
}

// Row maps a world Y to a screen row
func (rc RenderContext) Row(y float64) int {
	if rc.ViewHeight <= 0 {
		return rc.HUDRows
	}
	return rc.HUDRows + int(math.Floor((y-rc.ViewTop)*float64(rc.PlayfieldRows())/rc.ViewHeight))
}

// Project maps a world point to a cell, ok is false when the cell is outside the playfield
func (rc RenderContext) Project(x, y float64) (col, row int, ok bool) {
	col, row = rc.Column(x), rc.Row(y)
	ok = col >= 0 && col < rc.ScreenWidth && row >= rc.HUDRows && row < rc.ScreenHeight
	return col, row, ok
}

// InPlayfield reports whether the cell lies below the HUD and on screen
func (rc RenderContext) InPlayfield(col, row int) bool {
	return col >= 0 && col < rc.ScreenWidth && row >= rc.HUDRows && row < rc.ScreenHeight
}
