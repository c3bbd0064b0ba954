package parameter

import "time"

// Input
const (
	// KeyHoldDuration keeps a movement key active after its last press
	// Terminals report no key release, auto-repeat refreshes the hold
	KeyHoldDuration = 250 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the frame loop
	EventChannelSize = 100
)

// HUD & Overlay
const (
	// HUDRows is the number of terminal rows reserved above the playfield
	HUDRows = 1

	ScoreLabel = "Score: "
	TimeLabel  = "Time: "

	GameOverTitle  = "GAME OVER"
	GameOverPrompt = "press any key to play again"

	// ShakeCells is the horizontal cell offset applied while the shake window is open
	ShakeCells = 1
)

// Glyphs
const (
	PlayerChar   = '@'
	PlatformChar = '='
	EnemyChar    = 'x'
	SpringChar   = '^'
)
