package system

import (
	"time"

	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/event"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// BoundsSystem ends the run when the player falls past the destroy threshold
type BoundsSystem struct {
	ctx      *engine.GameContext
	gameOver GameOverFunc
}

// NewBoundsSystem creates the fall check
func NewBoundsSystem(ctx *engine.GameContext, gameOver GameOverFunc) engine.System {
	return &BoundsSystem{
		ctx:      ctx,
		gameOver: gameOver,
	}
}

func (s *BoundsSystem) Init() {}

func (s *BoundsSystem) Name() string {
	return "bounds"
}

func (s *BoundsSystem) Priority() int {
	return parameter.PriorityBounds
}

func (s *BoundsSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	_, y, ok := s.ctx.World.Position(s.ctx.State.Player)
	if !ok {
		return
	}
	if y > s.ctx.DestroyThreshold() {
		s.gameOver(event.ReasonFall)
	}
}
