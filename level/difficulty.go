package level

import (
	"math"

	"github.com/lixenwraith/lane-jumper/config"
)

// Curve is the difficulty at one score, evaluated fresh for every platform configuration
type Curve struct {
	Score int

	// Percent chances
	TrapChance      int
	MovingChance    int
	EnemyChance     int
	FakeEnemyChance int

	// MovingSpeedMin and MovingSpeedMax bound the uniform moving platform speed
	MovingSpeedMin int
	MovingSpeedMax int

	// LaneJitter is the horizontal jitter range around a lane center
	LaneJitter float64

	// Scale shrinks platform width at high scores
	Scale float64

	PatrolAllowed bool
	PatrolChance  int
	PatrolSpeed   float64
}

// Evaluate maps a score to the difficulty curve
func Evaluate(d *config.Difficulty, score int) Curve {
	if score < 0 {
		score = 0
	}

	c := Curve{
		Score:           score,
		TrapChance:      stepped(d.TrapChance, score, d.BreakpointMid, d.BreakpointHigh),
		MovingChance:    stepped(d.MovingChance, score, d.BreakpointMid, d.BreakpointHigh),
		EnemyChance:     stepped(d.EnemyChance, score, d.BreakpointMid, d.BreakpointHigh),
		FakeEnemyChance: d.FakeEnemy,
		MovingSpeedMin:  d.MovingSpeedMin,
		MovingSpeedMax:  d.MovingSpeedMax + min(score, d.MovingSpeedBonusCap),
		LaneJitter:      math.Min(d.LaneJitterBase+float64(score)*0.5, d.LaneJitterCap),
		Scale:           scaleFor(d, score),
		PatrolAllowed:   score > d.PatrolScoreThreshold,
		PatrolChance:    d.PatrolChance,
	}

	patrolCap := d.PatrolSpeedCap
	if score > d.PatrolBoostScore {
		patrolCap = d.PatrolSpeedCapBoost
	}
	c.PatrolSpeed = math.Min(d.PatrolSpeedBase+float64(score)*d.PatrolSpeedPerPoint, patrolCap)

	return c
}

// EnemyChanceFor returns the enemy rate for a platform, traps use the fixed bait rate
func (c Curve) EnemyChanceFor(fake bool) int {
	if fake {
		return c.FakeEnemyChance
	}
	return c.EnemyChance
}

func stepped(steps [3]int, score, mid, high int) int {
	switch {
	case score > high:
		return steps[2]
	case score > mid:
		return steps[1]
	default:
		return steps[0]
	}
}

func scaleFor(d *config.Difficulty, score int) float64 {
	if score <= d.ScaleBreakpoint {
		return 1.0
	}
	s := 1.0 - float64(score-d.ScaleBreakpoint)*d.ScaleShrinkPerPoint
	return math.Max(s, d.ScaleFloor)
}
