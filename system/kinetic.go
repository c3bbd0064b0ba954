package system

import (
	"time"

	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// KineticSystem integrates gravity and velocity for free bodies and bounces moving platforms off the play-area bounds
// Attached entities are positioned by the binding pass instead
type KineticSystem struct {
	ctx *engine.GameContext
}

// NewKineticSystem creates the integration system
func NewKineticSystem(ctx *engine.GameContext) engine.System {
	return &KineticSystem{ctx: ctx}
}

func (s *KineticSystem) Init() {}

func (s *KineticSystem) Name() string {
	return "kinetic"
}

func (s *KineticSystem) Priority() int {
	return parameter.PriorityKinetic
}

func (s *KineticSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	world := s.ctx.World
	sec := dt.Seconds()
	gravity := s.ctx.Tuning.Physics.Gravity

	for _, e := range world.Bodies.All() {
		if world.Attachments.Has(e) {
			continue
		}
		b, ok := world.Bodies.Get(e)
		if !ok {
			continue
		}

		if b.Gravity {
			b.VY += gravity * sec
		}
		b.X += b.VX * sec
		b.Y += b.VY * sec

		if osc, ok := world.Oscillation.Get(e); ok {
			switch {
			case b.X <= osc.MinX:
				b.X = osc.MinX
				b.VX = osc.Speed
			case b.X >= osc.MaxX:
				b.X = osc.MaxX
				b.VX = -osc.Speed
			}
		}

		world.Bodies.Set(e, b)
	}
}
