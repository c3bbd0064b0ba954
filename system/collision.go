package system

import (
	"sort"
	"time"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/event"
	"github.com/lixenwraith/lane-jumper/parameter"
)

var (
	tagPlatform = resolv.NewTag("platform")
	tagEnemy    = resolv.NewTag("enemy")
	tagSpring   = resolv.NewTag("spring")
)

// shapeClass selects the tag a shape carries in the space
type shapeClass uint8

const (
	classPlatform shapeClass = iota
	classEnemy
	classSpring
)

const (
	// spaceCell is the broadphase cell size in world units
	spaceCell = 32
	// spacePad extends the collision band beyond the view on every side
	spacePad = 64.0
)

// GameOverFunc ends the run, the session ignores repeated calls
type GameOverFunc func(reason event.GameOverReason)

// EnemyContact is the outcome of the player touching an enemy
type EnemyContact uint8

const (
	ContactLethal EnemyContact = iota
	ContactStomp
)

// ClassifyEnemyContact decides between a stomp and a lethal touch
// A stomp needs the player descending with its bottom above enemyTop + tolerance
func ClassifyEnemyContact(vy, playerBottom, enemyTop, tolerance float64) EnemyContact {
	if vy > 0 && playerBottom < enemyTop+tolerance {
		return ContactStomp
	}
	return ContactLethal
}

// LandsOn reports whether a descending player whose bottom was at prevBottom reached a platform from above
func LandsOn(vy, prevBottom, platformTop float64) bool {
	return vy > 0 && prevBottom <= platformTop
}

// CollisionSystem resolves player contacts with platforms, enemies and springs
// Shapes live in a resolv space covering the view band, rebuilt every step in band-local coordinates
type CollisionSystem struct {
	ctx      *engine.GameContext
	gameOver GameOverFunc

	space  *resolv.Space
	shapes []resolv.IShape
	owners map[resolv.IShape]core.Entity

	originX, originY float64

	prevBottom float64
	hasPrev    bool
}

// NewCollisionSystem creates the collision pass, gameOver is invoked on lethal contacts
func NewCollisionSystem(ctx *engine.GameContext, gameOver GameOverFunc) engine.System {
	t := ctx.Tuning
	w := int(t.ViewWidth()+2*spacePad) + spaceCell
	h := int(t.ViewHeight()+2*spacePad) + spaceCell

	s := &CollisionSystem{
		ctx:      ctx,
		gameOver: gameOver,
		space:    resolv.NewSpace(w, h, spaceCell, spaceCell),
		owners:   make(map[resolv.IShape]core.Entity),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.clearSpace()
	s.hasPrev = false
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(dt time.Duration) {
	if !s.ctx.State.IsPlaying() {
		return
	}

	world := s.ctx.World
	player := s.ctx.State.Player
	body, ok := world.Bodies.Get(player)
	if !ok {
		return
	}

	prevBottom := body.Bottom()
	if s.hasPrev {
		prevBottom = s.prevBottom
	}

	s.rebuild()

	// Swept box from the previous bottom so fast falls cannot skip a thin platform
	top := min(body.Top(), prevBottom-body.Height)
	height := body.Bottom() - top
	if !s.inBand(body.Left(), top, body.Width, height) {
		s.prevBottom = body.Bottom()
		s.hasPrev = true
		return
	}
	sweep := s.shapeFor(body.Left(), top, body.Width, height)
	s.add(sweep)

	enemies := s.touching(sweep, classEnemy)
	springs := s.touching(sweep, classSpring)
	platforms := s.touching(sweep, classPlatform)

	body = s.resolveEnemies(player, body, prevBottom, enemies)
	if !s.ctx.State.IsPlaying() {
		return
	}
	body = s.resolveSprings(body, springs)
	body = s.resolvePlatforms(body, prevBottom, platforms)

	world.Bodies.Set(player, body)
	s.prevBottom = body.Bottom()
	s.hasPrev = true
}

func (s *CollisionSystem) resolveEnemies(player core.Entity, body component.BodyComponent, prevBottom float64, enemies []core.Entity) component.BodyComponent {
	world := s.ctx.World
	phys := &s.ctx.Tuning.Physics

	for _, enemy := range enemies {
		eb, ok := world.Bodies.Get(enemy)
		if !ok {
			continue
		}

		// Bottom at the moment of first contact along the sweep
		contactBottom := body.Bottom()
		if prevBottom < eb.Top() {
			contactBottom = min(contactBottom, eb.Top())
		}

		if ClassifyEnemyContact(body.VY, contactBottom, eb.Top(), phys.StompTolerance) == ContactLethal {
			s.ctx.Log.Debug().Uint64("enemy", uint64(enemy)).Float64("vy", body.VY).Msg("enemy contact")
			s.gameOver(event.ReasonEnemy)
			return body
		}

		s.destroyChild(enemy)
		body.VY = -phys.StompSpeed
		s.ctx.State.AddScore(s.ctx.Tuning.Gameplay.StompBonus)
		s.ctx.State.ShakeRemaining = s.ctx.Tuning.Gameplay.ShakeDuration

		s.ctx.PushEvent(event.EventStomp, &event.ContactPayload{Entity: enemy, X: eb.X, Y: eb.Y})
		s.ctx.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: s.ctx.State.Score})
	}
	return body
}

func (s *CollisionSystem) resolveSprings(body component.BodyComponent, springs []core.Entity) component.BodyComponent {
	if len(springs) == 0 || body.VY <= 0 {
		return body
	}

	spring := springs[0]
	sb, _ := s.ctx.World.Bodies.Get(spring)
	body.VY = -s.ctx.Tuning.Physics.SpringSpeed
	s.ctx.State.ShakeRemaining = s.ctx.Tuning.Gameplay.ShakeDuration
	s.ctx.PushEvent(event.EventSpring, &event.ContactPayload{Entity: spring, X: sb.X, Y: sb.Y})
	return body
}

func (s *CollisionSystem) resolvePlatforms(body component.BodyComponent, prevBottom float64, platforms []core.Entity) component.BodyComponent {
	world := s.ctx.World
	phys := &s.ctx.Tuning.Physics

	for _, p := range platforms {
		pb, ok := world.Bodies.Get(p)
		if !ok || !LandsOn(body.VY, prevBottom, pb.Top()) {
			continue
		}
		pc, ok := world.Platforms.Get(p)
		if !ok || !pc.Collidable {
			continue
		}

		if !pc.Kind.Solid() {
			pc.Collidable = false
			pc.Visible = false
			world.Platforms.Set(p, pc)
			s.ctx.PushEvent(event.EventTrapRevealed, &event.ContactPayload{Entity: p, X: pb.X, Y: pb.Y})
			continue
		}

		body.Y = pb.Top() - body.Height/2 - phys.BounceNudge
		body.VY = -phys.BounceSpeed
		s.ctx.PushEvent(event.EventBounce, &event.ContactPayload{Entity: p, X: pb.X, Y: pb.Y})
		break
	}
	return body
}

// rebuild repopulates the space with every collidable entity inside the band
func (s *CollisionSystem) rebuild() {
	s.clearSpace()

	world := s.ctx.World
	s.originX = s.ctx.ViewLeft() - spacePad
	s.originY = s.ctx.State.ScrollY - spacePad

	for _, p := range world.Platforms.All() {
		pc, ok := world.Platforms.Get(p)
		if !ok || !pc.Collidable {
			continue
		}
		s.track(p, classPlatform)
	}
	for _, e := range world.Enemies.All() {
		s.track(e, classEnemy)
	}
	for _, e := range world.Springs.All() {
		s.track(e, classSpring)
	}
}

func (s *CollisionSystem) track(e core.Entity, class shapeClass) {
	b, ok := s.ctx.World.Bodies.Get(e)
	if !ok {
		return
	}
	if !s.inBand(b.Left(), b.Top(), b.Width, b.Height) {
		return
	}

	sh := s.shapeFor(b.Left(), b.Top(), b.Width, b.Height)
	switch class {
	case classPlatform:
		sh.Tags().Set(tagPlatform)
	case classEnemy:
		sh.Tags().Set(tagEnemy)
	case classSpring:
		sh.Tags().Set(tagSpring)
	}
	s.add(sh)
	s.owners[sh] = e
}

func (s *CollisionSystem) add(sh resolv.IShape) {
	s.space.Add(sh)
	s.shapes = append(s.shapes, sh)
}

// shapeFor creates a rectangle from world coordinates
func (s *CollisionSystem) shapeFor(left, top, w, h float64) resolv.IShape {
	return resolv.NewRectangleTopLeft(left-s.originX, top-s.originY, w, h)
}

// inBand reports whether a world rectangle lies fully inside the space
func (s *CollisionSystem) inBand(left, top, w, h float64) bool {
	x, y := left-s.originX, top-s.originY
	return x >= 0 && y >= 0 &&
		x+w <= s.ctx.Tuning.ViewWidth()+2*spacePad &&
		y+h <= s.ctx.Tuning.ViewHeight()+2*spacePad
}

// touching returns the entities of a class overlapping the query, topmost first
func (s *CollisionSystem) touching(query resolv.IShape, class shapeClass) []core.Entity {
	var hits []core.Entity
	seen := make(map[core.Entity]bool)

	settings := resolv.IntersectionTestSettings{
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if e, ok := s.owners[set.OtherShape]; ok && !seen[e] {
				seen[e] = true
				hits = append(hits, e)
			}
			return true
		},
	}
	switch class {
	case classPlatform:
		settings.TestAgainst = query.SelectTouchingCells(0).FilterShapes().ByTags(tagPlatform)
	case classEnemy:
		settings.TestAgainst = query.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy)
	case classSpring:
		settings.TestAgainst = query.SelectTouchingCells(0).FilterShapes().ByTags(tagSpring)
	}
	query.IntersectionTest(settings)

	world := s.ctx.World
	sort.SliceStable(hits, func(i, j int) bool {
		bi, _ := world.Bodies.Get(hits[i])
		bj, _ := world.Bodies.Get(hits[j])
		if bi.Top() != bj.Top() {
			return bi.Top() < bj.Top()
		}
		return hits[i] < hits[j]
	})
	return hits
}

func (s *CollisionSystem) clearSpace() {
	for _, sh := range s.shapes {
		s.space.Remove(sh)
	}
	s.shapes = s.shapes[:0]
	clear(s.owners)
}

// destroyChild removes an attached entity and drops it from its parent's list
func (s *CollisionSystem) destroyChild(child core.Entity) {
	world := s.ctx.World
	if a, ok := world.Attachments.Get(child); ok {
		if pc, ok := world.Platforms.Get(a.Parent); ok && pc.Detach(child) {
			world.Platforms.Set(a.Parent, pc)
		}
	}
	world.DestroyEntity(child)
}
