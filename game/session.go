// Package game wires a session: the world, its systems, the countdown and the run state machine.
package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/event"
	"github.com/lixenwraith/lane-jumper/input"
	"github.com/lixenwraith/lane-jumper/level"
	"github.com/lixenwraith/lane-jumper/parameter"
	"github.com/lixenwraith/lane-jumper/system"
)

// Session is one independent run of the game
// Step, GameOver and Restart must be called from a single goroutine
type Session struct {
	ctx     *engine.GameContext
	spawner *level.Spawner
	router  *event.Router[*Session]

	timer *engine.Task
	runs  int
}

// New validates the tuning and starts a fresh run
func New(tuning config.Tuning, rng core.Rand, log zerolog.Logger, source input.Source) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("session tuning: %w", err)
	}

	ctx := engine.NewGameContext(tuning, rng, log)
	s := &Session{
		ctx:     ctx,
		spawner: level.NewSpawner(ctx),
		router:  event.NewRouter[*Session](ctx.Events),
	}

	ctx.World.AddSystem(system.NewPlayerSystem(ctx, source))
	ctx.World.AddSystem(system.NewKineticSystem(ctx))
	ctx.World.AddSystem(system.NewCameraSystem(ctx))
	ctx.World.AddSystem(system.NewRecycleSystem(ctx, s.spawner))
	ctx.World.AddSystem(system.NewBindingSystem(ctx))
	ctx.World.AddSystem(system.NewCollisionSystem(ctx, s.gameOverFunc))
	ctx.World.AddSystem(system.NewBoundsSystem(ctx, s.gameOverFunc))

	s.router.Register(&logHandler{})

	s.reset()
	ctx.Log.Info().Int("pool", s.spawner.Pool().Size()).Msg("session started")
	return s, nil
}

// Context returns the session context for read access by collaborators
func (s *Session) Context() *engine.GameContext { return s.ctx }

// Router returns the event router so frontends can register handlers
func (s *Session) Router() *event.Router[*Session] { return s.router }

// Spawner returns the level generator
func (s *Session) Spawner() *level.Spawner { return s.spawner }

// State returns the run state
func (s *Session) State() *engine.GameState { return s.ctx.State }

// Score returns the current score
func (s *Session) Score() int { return s.ctx.State.Score }

// TimeLeft returns the seconds left on the countdown
func (s *Session) TimeLeft() int { return s.ctx.State.TimeLeft }

// Phase returns the run phase
func (s *Session) Phase() engine.Phase { return s.ctx.State.Phase }

// Runs returns the number of runs started, including the first
func (s *Session) Runs() int { return s.runs }

// Step advances the simulation by dt and dispatches the events it produced
// Returns the number of dispatched events
func (s *Session) Step(dt time.Duration) int {
	if dt <= 0 {
		return s.router.DispatchAll(s)
	}
	if dt > parameter.MaxStepDelta {
		dt = parameter.MaxStepDelta
	}

	if s.ctx.State.IsPlaying() {
		s.ctx.State.StepCount++
		s.ctx.Scheduler.Advance(dt)
	}
	s.ctx.World.Update(dt)

	return s.router.DispatchAll(s)
}

// GameOver ends the run, returns false when the run already ended
// The countdown is cancelled so no tick fires after the transition
func (s *Session) GameOver(reason event.GameOverReason) bool {
	state := s.ctx.State
	if !state.IsPlaying() {
		return false
	}

	state.Phase = engine.PhaseGameOver
	s.timer.Cancel()
	s.timer = nil

	s.ctx.PushEvent(event.EventGameOver, &event.GameOverPayload{
		FinalScore: state.Score,
		Reason:     reason,
	})
	s.ctx.Log.Info().
		Str("reason", reason.String()).
		Int("score", state.Score).
		Int("time_left", state.TimeLeft).
		Int64("steps", state.StepCount).
		Msg("game over")
	return true
}

func (s *Session) gameOverFunc(reason event.GameOverReason) {
	s.GameOver(reason)
}

// Restart resets every piece of run state and re-enters Playing
func (s *Session) Restart() {
	s.reset()
	s.ctx.PushEvent(event.EventRestart, &event.ScorePayload{Score: 0})
	s.ctx.Log.Info().Int("run", s.runs).Msg("restart")
}

// reset rebuilds the world and schedules a single countdown
func (s *Session) reset() {
	s.timer.Cancel()
	s.timer = nil

	s.ctx.Reset()
	s.ctx.World.InitSystems()

	s.spawner.Populate()
	s.spawnPlayer()

	s.timer = s.ctx.Scheduler.Every(s.ctx.Tuning.Gameplay.TimerInterval, s.tick)
	s.runs++
}

func (s *Session) spawnPlayer() {
	t := s.ctx.Tuning
	size := t.Geometry.PlayerSize
	player := s.ctx.World.Spawn(core.KindPlayer, t.Geometry.ScreenWidth/2, t.Level.PlayerStartY,
		core.Attributes{Width: size, Height: size, Gravity: true})
	s.ctx.World.Players.Set(player, component.PlayerComponent{Facing: 1})
	s.ctx.State.Player = player
}

// tick is the countdown callback
func (s *Session) tick() {
	state := s.ctx.State
	if !state.IsPlaying() {
		return
	}

	state.TimeLeft--
	s.ctx.PushEvent(event.EventTimeChanged, &event.TimePayload{SecondsLeft: state.TimeLeft})
	if state.TimeLeft <= 0 {
		s.GameOver(event.ReasonTimeout)
	}
}
