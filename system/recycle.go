package system

import (
	"time"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/level"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// RecycleSystem replaces every platform that crossed the destroy threshold with a freshly generated one above the top
type RecycleSystem struct {
	ctx     *engine.GameContext
	spawner *level.Spawner

	recycled int
}

// NewRecycleSystem creates the recycling pass over the spawner's pool
func NewRecycleSystem(ctx *engine.GameContext, spawner *level.Spawner) engine.System {
	return &RecycleSystem{
		ctx:     ctx,
		spawner: spawner,
	}
}

func (s *RecycleSystem) Init() {
	s.recycled = 0
}

func (s *RecycleSystem) Name() string {
	return "recycle"
}

func (s *RecycleSystem) Priority() int {
	return parameter.PriorityRecycle
}

// Recycled returns the number of platforms recycled since Init
func (s *RecycleSystem) Recycled() int {
	return s.recycled
}

func (s *RecycleSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	threshold := s.ctx.DestroyThreshold()
	stale := s.spawner.Pool().Stale(threshold)
	if len(stale) == 0 {
		return
	}

	for _, p := range stale {
		placed := s.spawner.Recycle(p)
		s.recycled++

		switch {
		case placed.Kind == component.PlatformFake:
			s.ctx.Log.Debug().
				Float64("x", placed.X).
				Float64("y", placed.Y).
				Int("score", s.ctx.State.Score).
				Msg("trap scheduled")
		case placed.Paired:
			s.ctx.Log.Debug().
				Float64("x", placed.X).
				Float64("y", placed.Y).
				Int("lane", placed.Lane).
				Msg("trap resolved")
		}
	}

	s.ctx.Log.Debug().
		Int("count", len(stale)).
		Int("total", s.recycled).
		Float64("top", s.ctx.State.MinPlatformY).
		Msg("platforms recycled")
}
