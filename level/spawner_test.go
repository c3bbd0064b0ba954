package level

import (
	"math"
	"testing"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
)

func TestTrapPairing(t *testing.T) {
	rng := &scriptedRand{rolls: []int{1}, fallback: 100}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)
	ctx.State.MinPlatformY = 0

	p := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})
	trap := s.Recycle(p)

	if trap.Kind != component.PlatformFake {
		t.Fatalf("Expected fake platform, got %s", trap.Kind)
	}
	if ctx.State.Pending == nil {
		t.Fatal("Expected a pending pairing after a trap")
	}
	if ctx.State.Pending.X != trap.X || ctx.State.Pending.Y != trap.Y {
		t.Errorf("Expected pending at (%.1f, %.1f), got (%.1f, %.1f)",
			trap.X, trap.Y, ctx.State.Pending.X, ctx.State.Pending.Y)
	}

	q := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})
	twin := s.Recycle(q)

	if twin.Kind != component.PlatformReal {
		t.Errorf("Expected real twin, got %s", twin.Kind)
	}
	if !twin.Paired {
		t.Error("Expected twin to be marked paired")
	}
	if twin.Y != trap.Y {
		t.Errorf("Expected twin at trap height %.1f, got %.1f", trap.Y, twin.Y)
	}
	minDist := ctx.Tuning.Geometry.ScreenWidth * ctx.Tuning.Geometry.SafeLaneFrac
	if math.Abs(twin.X-trap.X) <= minDist {
		t.Errorf("Expected twin farther than %.1f from trap, got %.1f", minDist, math.Abs(twin.X-trap.X))
	}
	if ctx.State.Pending != nil {
		t.Error("Expected pending pairing consumed")
	}
	if ctx.State.MinPlatformY != trap.Y {
		t.Errorf("Expected top unchanged by the twin, got %.1f", ctx.State.MinPlatformY)
	}
}

func TestPairedPlatformExemptFromMoving(t *testing.T) {
	// Every roll succeeds
	rng := &scriptedRand{fallback: 1}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformReal, 1, true)
	if placed.Kind != component.PlatformReal {
		t.Errorf("Expected paired platform to stay real, got %s", placed.Kind)
	}
	if ctx.World.Oscillation.Has(p) {
		t.Error("Expected no oscillation on paired platform")
	}

	ctx.Tuning.Difficulty.ExemptPairFromMoving = false
	q := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed = s.Configure(q, 240, -200, component.PlatformReal, 1, true)
	if placed.Kind != component.PlatformMoving {
		t.Errorf("Expected moving platform with exemption off, got %s", placed.Kind)
	}
}

func TestSinglePendingPairing(t *testing.T) {
	ctx := newTestContext(t, core.NewFastRand(7))
	ctx.State.Score = 500
	s := NewSpawner(ctx)
	p := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})

	lastFake := false
	for i := 0; i < 2000; i++ {
		placed := s.Recycle(p)
		if placed.Kind == component.PlatformFake {
			if lastFake {
				t.Fatalf("recycle %d: two traps in a row", i)
			}
			if ctx.State.Pending == nil {
				t.Fatalf("recycle %d: trap without pending pairing", i)
			}
		} else if lastFake && !placed.Paired {
			t.Fatalf("recycle %d: trap not followed by its twin", i)
		}
		lastFake = placed.Kind == component.PlatformFake
	}
}

func TestSpawnRatesAtHighScore(t *testing.T) {
	ctx := newTestContext(t, core.NewFastRand(42))
	ctx.State.Score = 200
	s := NewSpawner(ctx)
	p := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})

	var normal, traps, eligible, moving int
	for i := 0; i < 1000; i++ {
		placed := s.Recycle(p)
		if placed.Paired {
			continue
		}
		normal++
		switch placed.Kind {
		case component.PlatformFake:
			traps++
		case component.PlatformMoving:
			eligible++
			moving++
		case component.PlatformReal:
			eligible++
		}
	}

	trapRate := float64(traps) / float64(normal)
	if math.Abs(trapRate-0.40) > 0.08 {
		t.Errorf("Expected trap rate near 0.40, got %.3f", trapRate)
	}
	movingRate := float64(moving) / float64(eligible)
	if math.Abs(movingRate-0.30) > 0.08 {
		t.Errorf("Expected moving rate near 0.30, got %.3f", movingRate)
	}
}

func TestSafetyCounterSuppressesEnemies(t *testing.T) {
	// Spring hits, moving misses
	rng := &scriptedRand{rolls: []int{1, 100}, fallback: 100}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformReal, 1, false)
	if placed.Spring == 0 {
		t.Fatal("Expected spring attached")
	}
	if ctx.State.EnemySafeCount != 5 {
		t.Fatalf("Expected safety counter 5, got %d", ctx.State.EnemySafeCount)
	}

	for i := 0; i < 5; i++ {
		// Spring and moving miss, any enemy roll would hit
		rng.rolls = []int{100, 100, 1}
		q := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
		placed = s.Configure(q, 240, float64(-200-i*100), component.PlatformReal, 1, false)
		if !placed.Suppressed {
			t.Errorf("config %d: expected suppressed enemy roll", i+1)
		}
		if placed.Enemy != 0 {
			t.Errorf("config %d: expected no enemy", i+1)
		}
	}
	if ctx.State.EnemySafeCount != 0 {
		t.Errorf("Expected counter exhausted, got %d", ctx.State.EnemySafeCount)
	}

	rng.rolls = []int{100, 100, 1}
	q := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed = s.Configure(q, 240, -900, component.PlatformReal, 1, false)
	if placed.Suppressed {
		t.Error("Expected sixth configuration to roll")
	}
	if placed.Enemy == 0 {
		t.Error("Expected enemy on sixth configuration")
	}
}

func TestStartPlatformSkipsRolls(t *testing.T) {
	rng := &scriptedRand{fallback: 1}
	ctx := newTestContext(t, rng)
	ctx.State.Score = 300
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, 500, component.PlatformStart, 1, false)

	if rng.consumed != 0 {
		t.Errorf("Expected no rolls for start platform, got %d", rng.consumed)
	}
	if placed.Spring != 0 || placed.Enemy != 0 {
		t.Error("Expected start platform without attachments")
	}
	b, _ := ctx.World.Bodies.Get(p)
	if b.Width != ctx.Tuning.Geometry.PlatformWidth {
		t.Errorf("Expected full width %.1f, got %.1f", ctx.Tuning.Geometry.PlatformWidth, b.Width)
	}
	if b.VX != 0 {
		t.Errorf("Expected stationary start platform, got vx %.1f", b.VX)
	}
}

func TestTrapEnemyUsesBaitOffset(t *testing.T) {
	// Spring misses, enemy hits
	rng := &scriptedRand{rolls: []int{100, 1}, fallback: 100, pick: 2}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformFake, 1, false)
	if placed.Enemy == 0 {
		t.Fatal("Expected enemy on trap")
	}

	a, ok := ctx.World.Attachments.Get(placed.Enemy)
	if !ok {
		t.Fatal("Expected enemy attachment")
	}
	if a.Parent != p {
		t.Errorf("Expected parent %d, got %d", p, a.Parent)
	}
	if a.OffsetX != 20 {
		t.Errorf("Expected bait offset 20, got %.1f", a.OffsetX)
	}
	x, _, _ := ctx.World.Position(placed.Enemy)
	if x != 260 {
		t.Errorf("Expected enemy x 260, got %.1f", x)
	}
	if ctx.World.Patrols.Has(placed.Enemy) {
		t.Error("Expected trap enemy not to patrol")
	}
}

func TestMovingPlatformSetup(t *testing.T) {
	// Spring misses, moving hits, enemy hits
	rng := &scriptedRand{rolls: []int{100, 1, 1}, fallback: 100, pick: 1}
	ctx := newTestContext(t, rng)
	ctx.State.Score = 60
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformReal, 1, false)
	if placed.Kind != component.PlatformMoving {
		t.Fatalf("Expected moving platform, got %s", placed.Kind)
	}

	osc, ok := ctx.World.Oscillation.Get(p)
	if !ok {
		t.Fatal("Expected oscillation component")
	}
	if osc.MinX != 45 || osc.MaxX != 435 {
		t.Errorf("Expected bounds [45, 435], got [%.1f, %.1f]", osc.MinX, osc.MaxX)
	}
	if osc.Speed != 50 {
		t.Errorf("Expected minimum speed 50, got %.1f", osc.Speed)
	}
	vx, _, _ := ctx.World.Velocity(p)
	if vx != 50 {
		t.Errorf("Expected vx 50, got %.1f", vx)
	}

	evx, _, _ := ctx.World.Velocity(placed.Enemy)
	if evx != vx {
		t.Errorf("Expected enemy to inherit vx %.1f, got %.1f", vx, evx)
	}
	if placed.Patrol {
		t.Error("Expected no patrol on moving platform")
	}
}

func TestPatrolAboveThreshold(t *testing.T) {
	// Spring misses, moving misses, enemy hits, patrol hits
	rng := &scriptedRand{rolls: []int{100, 100, 1, 1}, fallback: 100}
	ctx := newTestContext(t, rng)
	ctx.State.Score = 120
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformReal, 1, false)
	if !placed.Patrol {
		t.Fatal("Expected patrolling enemy")
	}
	patrol, ok := ctx.World.Patrols.Get(placed.Enemy)
	if !ok {
		t.Fatal("Expected patrol component")
	}
	if patrol.Speed != 60 {
		t.Errorf("Expected patrol speed 60, got %.1f", patrol.Speed)
	}
}

func TestRecycleKeepsLaneMargins(t *testing.T) {
	ctx := newTestContext(t, core.NewFastRand(99))
	s := NewSpawner(ctx)
	minX, maxX := s.Lanes().Bounds()

	for _, placed := range s.Populate() {
		if placed.X < minX || placed.X > maxX {
			t.Fatalf("populated platform at %.1f outside [%.1f, %.1f]", placed.X, minX, maxX)
		}
	}

	ctx.State.Score = 400
	p := s.Pool().Live()[0]
	prevTop := ctx.State.MinPlatformY
	for i := 0; i < 1000; i++ {
		placed := s.Recycle(p)
		if placed.X < minX || placed.X > maxX {
			t.Fatalf("recycle %d: x %.1f outside [%.1f, %.1f]", i, placed.X, minX, maxX)
		}
		if placed.Paired {
			if placed.Y != prevTop {
				t.Fatalf("recycle %d: twin at %.1f, expected %.1f", i, placed.Y, prevTop)
			}
			continue
		}
		gap := prevTop - placed.Y
		if gap < 85 || gap > 105 {
			t.Fatalf("recycle %d: gap %.1f outside [85, 105]", i, gap)
		}
		prevTop = placed.Y
	}
}

func TestRecycleDestroysAttachments(t *testing.T) {
	// Spring hits on the first configuration
	rng := &scriptedRand{rolls: []int{1, 100}, fallback: 100}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	placed := s.Configure(p, 240, -100, component.PlatformReal, 1, false)
	if !ctx.World.Alive(placed.Spring) {
		t.Fatal("Expected live spring")
	}

	s.Recycle(p)
	if ctx.World.Alive(placed.Spring) {
		t.Error("Expected spring destroyed with the recycle")
	}
	pc, _ := ctx.World.Platforms.Get(p)
	if len(pc.Attached) != 0 {
		t.Errorf("Expected empty attachment list, got %d", len(pc.Attached))
	}
}

func TestPopulateLayout(t *testing.T) {
	rng := &scriptedRand{fallback: 100}
	ctx := newTestContext(t, rng)
	s := NewSpawner(ctx)

	placements := s.Populate()
	if len(placements) != 31 {
		t.Fatalf("Expected 31 platforms, got %d", len(placements))
	}
	for i := 0; i < 5; i++ {
		if placements[i].Kind != component.PlatformStart {
			t.Errorf("platform %d: expected start, got %s", i, placements[i].Kind)
		}
	}
	if placements[5].Kind == component.PlatformStart {
		t.Error("Expected regular platforms after the start run")
	}
	if placements[0].Y != 500 || placements[0].X != 240 {
		t.Errorf("Expected first platform at (240, 500), got (%.1f, %.1f)", placements[0].X, placements[0].Y)
	}
	if ctx.State.MinPlatformY != -2050 {
		t.Errorf("Expected top -2050, got %.1f", ctx.State.MinPlatformY)
	}
	if s.Pool().Size() != 31 {
		t.Errorf("Expected pool size 31, got %d", s.Pool().Size())
	}
}

func TestDegenerateGapRange(t *testing.T) {
	ctx := newTestContext(t, core.NewFastRand(3))
	ctx.Tuning.Level.GapMin = 90
	ctx.Tuning.Level.GapMax = 90
	ctx.State.MinPlatformY = 0
	s := NewSpawner(ctx)

	p := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})
	for i := 0; i < 20; i++ {
		before := ctx.State.MinPlatformY
		placed := s.Recycle(p)
		if !placed.Paired && before-placed.Y != 90 {
			t.Fatalf("Expected fixed gap 90, got %.1f", before-placed.Y)
		}
	}
}

func TestTwoLaneTwinKeepsSafetyDistance(t *testing.T) {
	ctx := newTestContext(t, core.NewFastRand(11))
	ctx.Tuning.Geometry.LaneFractions = []float64{0.35, 0.65}
	if err := ctx.Tuning.Validate(); err != nil {
		t.Fatalf("Expected two-lane layout to validate, got %v", err)
	}
	ctx.State.Score = 200
	s := NewSpawner(ctx)
	minDist := ctx.Tuning.PairDistance()
	minX, maxX := s.Lanes().Bounds()

	p := ctx.World.Spawn(core.KindPlatform, 240, 900, core.Attributes{})
	var trapX float64
	pairs := 0
	for i := 0; i < 5000; i++ {
		placed := s.Recycle(p)
		switch {
		case placed.Kind == component.PlatformFake:
			trapX = placed.X
		case placed.Paired:
			pairs++
			if d := math.Abs(placed.X - trapX); d <= minDist {
				t.Fatalf("recycle %d: twin at %.1f is %.1f from trap at %.1f, want > %.1f", i, placed.X, d, trapX, minDist)
			}
			if placed.X < minX || placed.X > maxX {
				t.Fatalf("recycle %d: twin at %.1f outside [%.1f, %.1f]", i, placed.X, minX, maxX)
			}
		}
	}
	if pairs == 0 {
		t.Fatal("Expected trap pairings at score 200")
	}
}
