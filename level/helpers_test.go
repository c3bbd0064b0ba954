package level

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
)

// scriptedRand answers percent rolls from a queue and every other range with its minimum
// Once the queue is drained percent rolls return fallback
type scriptedRand struct {
	rolls    []int
	fallback int
	pick     int
	consumed int
}

func (r *scriptedRand) Between(min, max int) int {
	if min == 1 && max == 100 {
		r.consumed++
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

func (r *scriptedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.pick % n
}

func newTestContext(t *testing.T, rng core.Rand) *engine.GameContext {
	t.Helper()
	return engine.NewGameContext(config.Default(), rng, zerolog.Nop())
}
