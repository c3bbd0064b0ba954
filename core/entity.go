package core

// Entity is a unique identifier for an entity, zero is never issued
type Entity uint64

// EntityKind tags what an entity represents in the world
type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindPlayer
	KindPlatform
	KindEnemy
	KindSpring
)

// String returns the kind name used in logs
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindEnemy:
		return "enemy"
	case KindSpring:
		return "spring"
	default:
		return "none"
	}
}

// Attributes carries the spawn-time shape of an entity
type Attributes struct {
	Width, Height float64
	// Gravity marks bodies affected by world gravity (player only)
	Gravity bool
}
