package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-jumper/game"
)

// SessionRenderer draws one session with the standard layer stack
type SessionRenderer struct {
	session      *game.Session
	orchestrator *RenderOrchestrator
	hud          *HUD
}

// NewSessionRenderer builds the layers and subscribes the HUD to the session's events
func NewSessionRenderer(screen tcell.Screen, s *game.Session) *SessionRenderer {
	hud := NewHUD(s)
	s.Router().Register(hud)

	o := NewRenderOrchestrator(screen)
	o.Register(NewEntitiesRenderer(), PriorityEntities)
	o.Register(NewHUDRenderer(hud), PriorityUI)
	o.Register(NewOverlayRenderer(hud), PriorityOverlay)

	return &SessionRenderer{
		session:      s,
		orchestrator: o,
		hud:          hud,
	}
}

// HUD returns the display model
func (r *SessionRenderer) HUD() *HUD { return r.hud }

// Resize resyncs the terminal
func (r *SessionRenderer) Resize() { r.orchestrator.Resize() }

// Draw renders the current frame
func (r *SessionRenderer) Draw() {
	w, h := r.orchestrator.Size()
	r.orchestrator.RenderFrame(NewRenderContext(r.session.Context(), w, h))
}
