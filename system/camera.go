package system

import (
	"math"
	"time"

	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/event"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// referenceFrame is the frame length the lerp factor is expressed in
const referenceFrame = time.Second / 60

// CameraSystem scrolls the view upward after the player, raises the height score and decays shake feedback
type CameraSystem struct {
	ctx *engine.GameContext
}

// NewCameraSystem creates camera following system
func NewCameraSystem(ctx *engine.GameContext) engine.System {
	return &CameraSystem{ctx: ctx}
}

func (s *CameraSystem) Init() {}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(dt time.Duration) {
	state := s.ctx.State
	if state.ShakeRemaining > 0 {
		state.ShakeRemaining = max(state.ShakeRemaining-dt, 0)
	}

	if !state.IsPlaying() {
		return
	}

	body, ok := s.ctx.World.Bodies.Get(state.Player)
	if !ok {
		return
	}

	state.ScrollY = s.follow(state.ScrollY, body.Y, dt)

	g := &s.ctx.Tuning.Gameplay
	height := int(math.Floor((s.ctx.Tuning.Level.PlayerStartY - body.Y) / g.HeightDivisor))
	if state.RaiseScore(height) {
		s.ctx.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: state.Score})
	}
}

// follow returns the new view top, it only ever decreases
// The camera moves once the player leaves the deadzone above the anchor
func (s *CameraSystem) follow(scrollY, playerY float64, dt time.Duration) float64 {
	g := &s.ctx.Tuning.Gameplay
	viewH := s.ctx.Tuning.ViewHeight()

	target := playerY + g.CameraDeadzone/2 - viewH*g.CameraAnchor
	if target >= scrollY {
		return scrollY
	}

	frames := float64(dt) / float64(referenceFrame)
	factor := 1 - math.Pow(1-g.CameraLerp, frames)
	return scrollY + (target-scrollY)*factor
}
