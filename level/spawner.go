package level

import (
	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
)

// Placement is the outcome of one platform configuration
type Placement struct {
	Platform core.Entity
	Kind     component.PlatformKind
	X, Y     float64
	Lane     int
	Paired   bool
	Spring   core.Entity
	Enemy    core.Entity
	Patrol   bool
	// Suppressed is set when the post-spring safety counter skipped the enemy roll
	Suppressed bool
}

// Spawner places and configures platforms above the current top
type Spawner struct {
	ctx   *engine.GameContext
	lanes Lanes
	pool  *Pool
}

// NewSpawner creates a spawner bound to a session
func NewSpawner(ctx *engine.GameContext) *Spawner {
	return &Spawner{
		ctx:   ctx,
		lanes: NewLanes(ctx.Tuning),
		pool:  NewPool(ctx.World),
	}
}

// Lanes returns the lane layout used for placement
func (s *Spawner) Lanes() Lanes { return s.lanes }

// Pool returns the platform pool
func (s *Spawner) Pool() *Pool { return s.pool }

// Populate builds the opening layout: the start platform plus a column of platforms climbing at fixed spacing
// The lowest ones are start platforms with no hazards
func (s *Spawner) Populate() []Placement {
	t := s.ctx.Tuning
	lvl := &t.Level
	world := s.ctx.World

	placements := make([]Placement, 0, lvl.PoolSize+1)

	first := world.Spawn(core.KindPlatform, s.lanes.Clamp(t.Geometry.ScreenWidth/2), lvl.StartPlatformY, core.Attributes{})
	placements = append(placements, s.Configure(first, s.lanes.Clamp(t.Geometry.ScreenWidth/2), lvl.StartPlatformY,
		component.PlatformStart, s.lanes.Nearest(t.Geometry.ScreenWidth/2), false))

	for i := 1; i <= lvl.PoolSize; i++ {
		idx, base := s.lanes.Pick(s.ctx.Rand)
		x := s.lanes.Clamp(base + float64(s.ctx.Rand.Between(-lvl.InitialJitter, lvl.InitialJitter)))
		y := lvl.StartPlatformY - float64(i)*lvl.InitialSpacing

		kind := component.PlatformReal
		if i <= lvl.StartPlatformCount {
			kind = component.PlatformStart
		}

		p := world.Spawn(core.KindPlatform, x, y, core.Attributes{})
		placements = append(placements, s.Configure(p, x, y, kind, idx, false))
	}

	if top, ok := s.pool.Topmost(); ok {
		s.ctx.State.MinPlatformY = top
	}

	s.ctx.Log.Debug().
		Int("platforms", len(placements)).
		Float64("min_y", s.ctx.State.MinPlatformY).
		Msg("level populated")

	return placements
}

// Recycle moves a platform that fell below the view to a new spot above the top
// Attached entities are destroyed before the platform is reconfigured
func (s *Spawner) Recycle(p core.Entity) Placement {
	s.pool.DetachAll(p)

	if pending, ok := s.ctx.State.TakePending(); ok {
		return s.placePair(p, pending)
	}
	return s.placeNext(p)
}

// placePair puts the real twin of the last trap on the same row in a lane away from it
func (s *Spawner) placePair(p core.Entity, pending engine.PendingPair) Placement {
	t := s.ctx.Tuning
	minDist := t.PairDistance()

	safe := s.lanes.SafeFrom(pending.X, minDist)
	idx := core.Pick(s.ctx.Rand, safe)
	center := s.lanes.Center(idx)

	jitter := t.Level.PairJitter
	x := s.lanes.Clamp(center + float64(s.ctx.Rand.Between(-jitter, jitter)))
	if core.Abs(x-pending.X) <= minDist {
		x = s.lanes.Clamp(center)
	}
	// Lanes too close together for this trap, push the twin off the lane
	if core.Abs(x-pending.X) <= minDist {
		x = s.lanes.Away(pending.X, minDist)
		idx = s.lanes.Nearest(x)
	}

	return s.Configure(p, x, pending.Y, component.PlatformReal, idx, true)
}

// placeNext advances the top by a reachable gap and rolls for a trap
func (s *Spawner) placeNext(p core.Entity) Placement {
	t := s.ctx.Tuning
	state := s.ctx.State
	curve := Evaluate(&t.Difficulty, state.Score)

	state.MinPlatformY -= float64(s.ctx.Rand.Between(t.Level.GapMin, t.Level.GapMax))
	y := state.MinPlatformY

	idx, base := s.lanes.Pick(s.ctx.Rand)
	jitter := int(curve.LaneJitter)
	x := s.lanes.Clamp(base + float64(s.ctx.Rand.Between(-jitter, jitter)))

	if core.Chance(s.ctx.Rand, curve.TrapChance) {
		placement := s.Configure(p, x, y, component.PlatformFake, idx, false)
		state.SetPending(x, y)
		return placement
	}
	return s.Configure(p, x, y, component.PlatformReal, idx, false)
}

// Configure resets a platform and applies the difficulty rolls for its kind
// Start platforms skip every roll
func (s *Spawner) Configure(p core.Entity, x, y float64, kind component.PlatformKind, lane int, paired bool) Placement {
	t := s.ctx.Tuning
	world := s.ctx.World
	state := s.ctx.State
	curve := Evaluate(&t.Difficulty, state.Score)

	scale := 1.0
	if kind != component.PlatformStart {
		scale = curve.Scale
	}

	world.Kinds.Set(p, core.KindPlatform)
	world.Bodies.Set(p, component.BodyComponent{
		X:      x,
		Y:      y,
		Width:  t.Geometry.PlatformWidth * scale,
		Height: t.Geometry.PlatformHeight,
	})
	world.Oscillation.Remove(p)

	pc := component.PlatformComponent{
		Kind:       kind,
		Lane:       lane,
		Scale:      scale,
		Collidable: true,
		Visible:    true,
		Paired:     paired,
	}
	world.Platforms.Set(p, pc)

	placement := Placement{Platform: p, Kind: kind, X: x, Y: y, Lane: lane, Paired: paired}

	if kind == component.PlatformStart {
		return placement
	}

	hasSpring := core.Chance(s.ctx.Rand, t.Gameplay.SpringChance)
	if hasSpring {
		state.EnemySafeCount = t.Gameplay.EnemySafeCount
	} else if state.EnemySafeCount > 0 {
		state.EnemySafeCount--
		placement.Suppressed = true
	}
	rollEnemy := !hasSpring && !placement.Suppressed

	if kind == component.PlatformFake {
		if hasSpring {
			placement.Spring = s.attachSpring(p)
		}
		if rollEnemy {
			placement.Enemy, placement.Patrol = s.rollEnemy(p, curve, true)
		}
		return placement
	}

	exempt := paired && t.Difficulty.ExemptPairFromMoving
	if !exempt && core.Chance(s.ctx.Rand, curve.MovingChance) {
		speed := float64(s.ctx.Rand.Between(curve.MovingSpeedMin, curve.MovingSpeedMax))
		dir := core.Pick(s.ctx.Rand, []float64{-1, 1})

		minX, maxX := s.lanes.Bounds()
		world.Oscillation.Set(p, component.OscillationComponent{Speed: speed, MinX: minX, MaxX: maxX})
		world.SetVelocity(p, speed*dir, 0)

		pc.Kind = component.PlatformMoving
		world.Platforms.Set(p, pc)
		placement.Kind = component.PlatformMoving
	}

	if hasSpring {
		placement.Spring = s.attachSpring(p)
	}
	if rollEnemy {
		placement.Enemy, placement.Patrol = s.rollEnemy(p, curve, false)
	}

	return placement
}

// attachSpring seats a spring on the platform center
func (s *Spawner) attachSpring(p core.Entity) core.Entity {
	g := &s.ctx.Tuning.Geometry
	body, _ := s.ctx.World.Bodies.Get(p)

	y := body.Top() - g.SpringHeight/2 - 2
	spring := s.ctx.World.Spawn(core.KindSpring, body.X, y, core.Attributes{Width: g.SpringWidth, Height: g.SpringHeight})
	s.ctx.World.Springs.Set(spring, component.SpringComponent{})
	s.bind(p, spring, 0, body.VX)
	return spring
}

// rollEnemy places an enemy on the platform with the curve's chance
// Trap enemies sit at one of the bait offsets, enemies on stationary real platforms may patrol
func (s *Spawner) rollEnemy(p core.Entity, curve Curve, fake bool) (core.Entity, bool) {
	if !core.Chance(s.ctx.Rand, curve.EnemyChanceFor(fake)) {
		return 0, false
	}

	g := &s.ctx.Tuning.Geometry
	body, _ := s.ctx.World.Bodies.Get(p)

	offset := 0.0
	if fake {
		offset = core.Pick(s.ctx.Rand, s.ctx.Tuning.Gameplay.FakeEnemyOffsets)
	}

	y := body.Top() - g.EnemySize/2 - 2
	enemy := s.ctx.World.Spawn(core.KindEnemy, body.X+offset, y, core.Attributes{Width: g.EnemySize, Height: g.EnemySize})
	s.ctx.World.Enemies.Set(enemy, component.EnemyComponent{})
	s.bind(p, enemy, offset, body.VX)

	patrol := false
	pc, _ := s.ctx.World.Platforms.Get(p)
	if pc.Kind == component.PlatformReal && curve.PatrolAllowed && core.Chance(s.ctx.Rand, curve.PatrolChance) {
		dir := core.Pick(s.ctx.Rand, []float64{-1, 1})
		s.ctx.World.Patrols.Set(enemy, component.PatrolComponent{
			Speed:  curve.PatrolSpeed,
			Offset: offset,
			Dir:    dir,
		})
		patrol = true
	}

	return enemy, patrol
}

// bind records the parent link on the child and the child on the parent's list
func (s *Spawner) bind(parent, child core.Entity, offsetX, vx float64) {
	world := s.ctx.World
	world.Attachments.Set(child, component.AttachmentComponent{Parent: parent, OffsetX: offsetX})
	world.SetVelocity(child, vx, 0)

	pc, ok := world.Platforms.Get(parent)
	if !ok {
		return
	}
	pc.Attached = append(pc.Attached, child)
	world.Platforms.Set(parent, pc)
}
