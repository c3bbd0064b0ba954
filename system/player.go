package system

import (
	"time"

	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/input"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// PlayerSystem turns the movement intent into horizontal velocity and wraps the player around the screen edges
type PlayerSystem struct {
	ctx    *engine.GameContext
	source input.Source
}

// NewPlayerSystem creates a player control system reading from source
func NewPlayerSystem(ctx *engine.GameContext, source input.Source) engine.System {
	if source == nil {
		source = input.Fixed(input.IntentNone)
	}
	return &PlayerSystem{
		ctx:    ctx,
		source: source,
	}
}

func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	player := s.ctx.State.Player
	body, ok := s.ctx.World.Bodies.Get(player)
	if !ok {
		return
	}

	intent := s.source.MovementIntent()
	body.VX = intent.Direction() * s.ctx.Tuning.Physics.RunSpeed

	if pc, ok := s.ctx.World.Players.Get(player); ok && intent != input.IntentNone {
		pc.Facing = intent.Direction()
		s.ctx.World.Players.Set(player, pc)
	}

	// Wraparound uses the body center
	w := s.ctx.Tuning.Geometry.ScreenWidth
	if body.X < 0 {
		body.X = w
	} else if body.X > w {
		body.X = 0
	}

	s.ctx.World.Bodies.Set(player, body)
}
