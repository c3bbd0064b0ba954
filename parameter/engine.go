package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepDelta caps a single simulation step so a stalled frame cannot tunnel the player through platforms
	MaxStepDelta = 50 * time.Millisecond

	// EventQueueSize is the initial capacity of the per-step event queue
	EventQueueSize = 64
)
