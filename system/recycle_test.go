package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/level"
)

func TestRecycleReplacesStalePlatforms(t *testing.T) {
	ctx := newTestContext(t)
	spawner := level.NewSpawner(ctx)
	spawner.Populate()
	spawnPlayer(ctx, 240, 450)

	before := spawner.Pool().Size()
	top := ctx.State.MinPlatformY

	// Scroll up so the lowest platforms fall past the threshold
	ctx.State.ScrollY -= 600
	threshold := ctx.DestroyThreshold()
	stale := spawner.Pool().Stale(threshold)
	if len(stale) == 0 {
		t.Fatal("Expected stale platforms after scrolling")
	}

	sys := NewRecycleSystem(ctx, spawner)
	sys.Update(16 * time.Millisecond)

	if spawner.Pool().Size() != before {
		t.Errorf("Expected pool size %d, got %d", before, spawner.Pool().Size())
	}
	if len(spawner.Pool().Stale(threshold)) != 0 {
		t.Error("Expected no stale platforms after the pass")
	}
	for _, p := range stale {
		_, y, _ := ctx.World.Position(p)
		if y >= top {
			t.Errorf("Expected recycled platform above %.1f, got %.1f", top, y)
		}
	}
	if got := sys.(*RecycleSystem).Recycled(); got != len(stale) {
		t.Errorf("Expected %d recycled, got %d", len(stale), got)
	}
}

func TestRecycleCascadesAttachments(t *testing.T) {
	ctx := newTestContext(t)
	spawner := level.NewSpawner(ctx)
	spawnPlayer(ctx, 240, 450)

	p := spawnPlatform(ctx, 240, 2000, component.PlatformReal)
	enemy := attach(ctx, p, core.KindEnemy, 0)
	spring := attach(ctx, p, core.KindSpring, 0)

	NewRecycleSystem(ctx, spawner).Update(16 * time.Millisecond)

	if ctx.World.Alive(enemy) || ctx.World.Alive(spring) {
		t.Error("Expected attachments destroyed with the recycle")
	}
	if !ctx.World.Alive(p) {
		t.Error("Expected the platform slot reused in place")
	}
	_, y, _ := ctx.World.Position(p)
	if y > ctx.DestroyThreshold() {
		t.Errorf("Expected platform moved above the threshold, got %.1f", y)
	}
}
