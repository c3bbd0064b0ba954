package parameter

// Arcade physics in world units per second
const (
	Gravity = 1200.0

	// BounceSpeed is the upward impulse from landing on a real platform
	BounceSpeed = 700.0
	// StompSpeed is the upward impulse from stomping an enemy
	StompSpeed = 800.0
	// SpringSpeed is the upward impulse from a spring
	SpringSpeed = 1200.0

	// PlayerRunSpeed is the horizontal speed while a direction is held
	PlayerRunSpeed = 300.0

	// BounceNudge lifts the player after a bounce to avoid re-colliding the same frame
	BounceNudge = 4.0

	// StompTolerance is how far the player's bottom may sink past an enemy's top and still stomp
	StompTolerance = 15.0
)
