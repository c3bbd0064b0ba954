package engine

import (
	"time"

	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
)

// Phase is the run state machine
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// PendingPair is the deferred placement of a trap's real twin
type PendingPair struct {
	X, Y float64
}

// GameState centralizes the mutable run state of one session
// Owned by the simulation goroutine, never shared across sessions
type GameState struct {
	Phase Phase

	// Score is monotonic non-decreasing during Playing
	Score    int
	TimeLeft int

	// Pending is the single outstanding trap pairing, nil when none
	Pending *PendingPair

	// EnemySafeCount suppresses enemy rolls for the next configurations after a spring
	EnemySafeCount int

	// MinPlatformY is the height of the topmost spawned platform
	MinPlatformY float64

	// ScrollY is the world Y of the view's top edge
	ScrollY float64

	// ShakeRemaining is the time left on the current shake feedback
	ShakeRemaining time.Duration

	Player core.Entity

	// StepCount is the number of simulation steps since the last reset
	StepCount int64
}

// NewGameState creates a run state initialized for a fresh run
func NewGameState(t *config.Tuning) *GameState {
	gs := &GameState{}
	gs.Reset(t)
	return gs
}

// Reset restores the state of a fresh run
func (gs *GameState) Reset(t *config.Tuning) {
	*gs = GameState{
		Phase:        PhasePlaying,
		TimeLeft:     t.Gameplay.TimeLimit,
		MinPlatformY: t.Level.StartPlatformY,
		ScrollY:      InitialScrollY(t),
	}
}

// InitialScrollY is the view top when the camera is centered on the screen
func InitialScrollY(t *config.Tuning) float64 {
	return t.Geometry.ScreenHeight/2 - t.ViewHeight()/2
}

// RaiseScore sets the score to v if it is higher, returns true on change
func (gs *GameState) RaiseScore(v int) bool {
	if v <= gs.Score {
		return false
	}
	gs.Score = v
	return true
}

// AddScore adds a non-negative bonus
func (gs *GameState) AddScore(bonus int) {
	if bonus > 0 {
		gs.Score += bonus
	}
}

// SetPending records a trap pairing, false if one is already outstanding
func (gs *GameState) SetPending(x, y float64) bool {
	if gs.Pending != nil {
		return false
	}
	gs.Pending = &PendingPair{X: x, Y: y}
	return true
}

// TakePending consumes the outstanding pairing
func (gs *GameState) TakePending() (PendingPair, bool) {
	if gs.Pending == nil {
		return PendingPair{}, false
	}
	p := *gs.Pending
	gs.Pending = nil
	return p, true
}

// IsPlaying reports whether the run is live
func (gs *GameState) IsPlaying() bool {
	return gs.Phase == PhasePlaying
}
