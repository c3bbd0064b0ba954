// Package render draws a session onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-jumper/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Size returns the current terminal dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.screen.Size()
}

// Resize resyncs the terminal after a size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.screen.SetStyle(tcell.StyleDefault.Background(visual.ColorBackground))
	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}

// drawText writes s left to right starting at (x, y), clipped to the screen
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= 0 && x < w {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}
