package component

import "github.com/lixenwraith/lane-jumper/core"

// PlatformKind is the closed set of platform variants
type PlatformKind uint8

const (
	// PlatformStart is guaranteed safe: no hazards, boosts or motion
	PlatformStart PlatformKind = iota
	// PlatformReal bounces the player
	PlatformReal
	// PlatformFake is a trap: it vanishes when landed on
	PlatformFake
	// PlatformMoving is a real platform oscillating between the play-area bounds
	PlatformMoving
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformStart:
		return "start"
	case PlatformReal:
		return "real"
	case PlatformFake:
		return "fake"
	case PlatformMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Solid reports whether landing on the kind bounces the player
func (k PlatformKind) Solid() bool {
	return k != PlatformFake
}

// PlatformComponent resides on every platform entity
// Attached lists the enemies and springs bound to it, destroyed with the platform
type PlatformComponent struct {
	Kind  PlatformKind
	Lane  int
	Scale float64

	Collidable bool
	Visible    bool

	// Paired marks the real twin placed for a trap
	Paired bool

	Attached []core.Entity
}

// Detach removes e from the attached list, returns false if it was not attached
func (p *PlatformComponent) Detach(e core.Entity) bool {
	for i, a := range p.Attached {
		if a == e {
			p.Attached = append(p.Attached[:i], p.Attached[i+1:]...)
			return true
		}
	}
	return false
}

// OscillationComponent is the kind-specific data of a moving platform
type OscillationComponent struct {
	Speed      float64
	MinX, MaxX float64
}
