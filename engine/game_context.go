package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/event"
)

// GameContext is the explicit session object passed to every core operation
// Several contexts may run side by side without sharing state
type GameContext struct {
	ID uuid.UUID

	Tuning    *config.Tuning
	World     *World
	State     *GameState
	Rand      core.Rand
	Events    *event.EventQueue
	Scheduler *Scheduler

	Log zerolog.Logger
}

// NewGameContext creates a session context with an empty world
func NewGameContext(tuning config.Tuning, rng core.Rand, log zerolog.Logger) *GameContext {
	id := uuid.New()
	t := tuning
	return &GameContext{
		ID:        id,
		Tuning:    &t,
		World:     NewWorld(),
		State:     NewGameState(&t),
		Rand:      rng,
		Events:    event.NewEventQueue(),
		Scheduler: NewScheduler(),
		Log:       log.With().Str("session", id.String()).Logger(),
	}
}

// PushEvent emits a game event stamped with the current step
func (c *GameContext) PushEvent(t event.EventType, payload any) {
	c.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Step:    c.State.StepCount,
	})
}

// DestroyThreshold is the world Y past which entities are recycled or destroyed
// It sits DestroyMargin above the view's lower edge so recycling happens before anything leaves the screen
func (c *GameContext) DestroyThreshold() float64 {
	return c.State.ScrollY + c.Tuning.ViewHeight() - c.Tuning.Level.DestroyMargin
}

// ViewLeft is the world X of the view's left edge, the view is centered on the screen horizontally
func (c *GameContext) ViewLeft() float64 {
	return c.Tuning.Geometry.ScreenWidth/2 - c.Tuning.ViewWidth()/2
}

// Reset clears the world, the run state and every scheduled task
func (c *GameContext) Reset() {
	c.Scheduler.Reset()
	c.World.Clear()
	c.State.Reset(c.Tuning)
	c.Events.Consume()
}
