package system

import (
	"time"

	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// BindingSystem keeps enemies and springs on their parent platform
// Children of a destroyed parent, or past the destroy threshold, are destroyed before any update
type BindingSystem struct {
	ctx *engine.GameContext
}

// NewBindingSystem creates the parent binding pass
func NewBindingSystem(ctx *engine.GameContext) engine.System {
	return &BindingSystem{ctx: ctx}
}

func (s *BindingSystem) Init() {}

func (s *BindingSystem) Name() string {
	return "binding"
}

func (s *BindingSystem) Priority() int {
	return parameter.PriorityBinding
}

func (s *BindingSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	world := s.ctx.World
	threshold := s.ctx.DestroyThreshold()
	sec := dt.Seconds()

	// Collect first, the destroy pass mutates the stores being walked
	var doomed []core.Entity
	children := world.Attachments.All()

	for _, child := range children {
		a, ok := world.Attachments.Get(child)
		if !ok {
			continue
		}
		body, ok := world.Bodies.Get(child)
		if !ok || body.Y > threshold || !world.Platforms.Has(a.Parent) {
			doomed = append(doomed, child)
		}
	}

	for _, child := range doomed {
		s.unbind(child)
	}

	for _, child := range world.Attachments.All() {
		a, _ := world.Attachments.Get(child)
		body, _ := world.Bodies.Get(child)
		parent, ok := world.Bodies.Get(a.Parent)
		if !ok {
			continue
		}

		if patrol, ok := world.Patrols.Get(child); ok {
			limit := parent.Width/2 - body.Width/2
			if limit < 0 {
				limit = 0
			}

			patrol.Offset += patrol.Dir * patrol.Speed * sec
			if patrol.Offset >= limit {
				patrol.Offset = limit
				patrol.Dir = -1
			} else if patrol.Offset <= -limit {
				patrol.Offset = -limit
				patrol.Dir = 1
			}
			world.Patrols.Set(child, patrol)

			body.X = parent.X + patrol.Offset
			body.VX = patrol.Dir * patrol.Speed
		} else {
			body.X = parent.X + a.OffsetX
			body.VX = parent.VX
		}

		world.Bodies.Set(child, body)
	}
}

// unbind destroys a child and drops it from its parent's attachment list
func (s *BindingSystem) unbind(child core.Entity) {
	world := s.ctx.World
	if a, ok := world.Attachments.Get(child); ok {
		if pc, ok := world.Platforms.Get(a.Parent); ok && pc.Detach(child) {
			world.Platforms.Set(a.Parent, pc)
		}
	}
	world.DestroyEntity(child)
}
