package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/event"
)

// scriptedRand answers percent rolls from a queue and every other range with its minimum
type scriptedRand struct {
	rolls    []int
	fallback int
}

func (r *scriptedRand) Between(min, max int) int {
	if min == 1 && max == 100 {
		if len(r.rolls) > 0 {
			v := r.rolls[0]
			r.rolls = r.rolls[1:]
			return v
		}
		return r.fallback
	}
	if max < min {
		min = max
	}
	return min
}

func (r *scriptedRand) Intn(int) int { return 0 }

func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	return engine.NewGameContext(config.Default(), &scriptedRand{fallback: 100}, zerolog.Nop())
}

func spawnPlayer(ctx *engine.GameContext, x, y float64) core.Entity {
	size := ctx.Tuning.Geometry.PlayerSize
	p := ctx.World.Spawn(core.KindPlayer, x, y, core.Attributes{Width: size, Height: size, Gravity: true})
	ctx.World.Players.Set(p, component.PlayerComponent{Facing: 1})
	ctx.State.Player = p
	return p
}

func spawnPlatform(ctx *engine.GameContext, x, y float64, kind component.PlatformKind) core.Entity {
	g := &ctx.Tuning.Geometry
	p := ctx.World.Spawn(core.KindPlatform, x, y, core.Attributes{Width: g.PlatformWidth, Height: g.PlatformHeight})
	ctx.World.Platforms.Set(p, component.PlatformComponent{
		Kind:       kind,
		Scale:      1,
		Collidable: true,
		Visible:    true,
	})
	return p
}

func attach(ctx *engine.GameContext, parent core.Entity, kind core.EntityKind, offset float64) core.Entity {
	g := &ctx.Tuning.Geometry
	pb, _ := ctx.World.Bodies.Get(parent)

	var child core.Entity
	switch kind {
	case core.KindEnemy:
		child = ctx.World.Spawn(kind, pb.X+offset, pb.Top()-g.EnemySize/2-2, core.Attributes{Width: g.EnemySize, Height: g.EnemySize})
		ctx.World.Enemies.Set(child, component.EnemyComponent{})
	default:
		child = ctx.World.Spawn(kind, pb.X+offset, pb.Top()-g.SpringHeight/2-2, core.Attributes{Width: g.SpringWidth, Height: g.SpringHeight})
		ctx.World.Springs.Set(child, component.SpringComponent{})
	}

	ctx.World.Attachments.Set(child, component.AttachmentComponent{Parent: parent, OffsetX: offset})
	pc, _ := ctx.World.Platforms.Get(parent)
	pc.Attached = append(pc.Attached, child)
	ctx.World.Platforms.Set(parent, pc)
	return child
}

// gameOverRecorder collects the reasons passed to a GameOverFunc
type gameOverRecorder struct {
	reasons []event.GameOverReason
}

func (r *gameOverRecorder) fn(ctx *engine.GameContext) GameOverFunc {
	return func(reason event.GameOverReason) {
		r.reasons = append(r.reasons, reason)
		ctx.State.Phase = engine.PhaseGameOver
	}
}

func eventTypes(ctx *engine.GameContext) []event.EventType {
	var types []event.EventType
	for _, ev := range ctx.Events.Consume() {
		types = append(types, ev.Type)
	}
	return types
}

func hasEvent(types []event.EventType, want event.EventType) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
