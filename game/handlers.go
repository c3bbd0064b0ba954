package game

import (
	"github.com/lixenwraith/lane-jumper/event"
)

// logHandler records run milestones at debug level
type logHandler struct{}

func (h *logHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStomp,
		event.EventSpring,
		event.EventTrapRevealed,
	}
}

func (h *logHandler) HandleEvent(s *Session, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ContactPayload)
	if !ok {
		return
	}
	s.ctx.Log.Debug().
		Str("event", ev.Type.String()).
		Int64("step", ev.Step).
		Uint64("entity", uint64(p.Entity)).
		Float64("x", p.X).
		Float64("y", p.Y).
		Int("score", s.ctx.State.Score).
		Msg("contact")
}
