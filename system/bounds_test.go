package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/lane-jumper/event"
)

func TestFallEndsRun(t *testing.T) {
	ctx := newTestContext(t)
	rec := &gameOverRecorder{}
	player := spawnPlayer(ctx, 240, 450)
	sys := NewBoundsSystem(ctx, rec.fn(ctx))

	sys.Update(16 * time.Millisecond)
	if len(rec.reasons) != 0 {
		t.Fatalf("Expected no game over in view, got %v", rec.reasons)
	}

	ctx.World.SetPosition(player, 240, ctx.DestroyThreshold()+1)
	sys.Update(16 * time.Millisecond)
	if len(rec.reasons) != 1 || rec.reasons[0] != event.ReasonFall {
		t.Errorf("Expected fall game over, got %v", rec.reasons)
	}

	// Terminal state skips further checks
	sys.Update(16 * time.Millisecond)
	if len(rec.reasons) != 1 {
		t.Errorf("Expected a single game over, got %d", len(rec.reasons))
	}
}
