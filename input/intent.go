package input

// Intent is the horizontal movement the player asks for
type Intent uint8

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}

// Direction returns -1 for left, 1 for right, 0 otherwise
func (i Intent) Direction() float64 {
	switch i {
	case IntentLeft:
		return -1
	case IntentRight:
		return 1
	default:
		return 0
	}
}

// Source provides the current movement intent to the simulation
type Source interface {
	MovementIntent() Intent
}

// Fixed is a Source that always returns the same intent
type Fixed Intent

// MovementIntent returns the fixed intent
func (f Fixed) MovementIntent() Intent { return Intent(f) }

// Action is what a decoded terminal event asks of the frontend
type Action uint8

const (
	ActionNone Action = iota
	// ActionPress is a non-movement key or a fresh click, restarts the run after game over
	ActionPress
	// ActionMove is a direction key, auto-repeat of a held key never restarts
	ActionMove
	ActionQuit
	ActionResize
)
