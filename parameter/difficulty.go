package parameter

// Score breakpoints shared by the stepped chances
const (
	DifficultyBreakpointMid  = 50
	DifficultyBreakpointHigh = 150
)

// Stepped chances in percent: base, past mid, past high
var (
	TrapChanceSteps   = [3]int{20, 30, 40}
	MovingChanceSteps = [3]int{10, 20, 30}
	EnemyChanceSteps  = [3]int{20, 40, 60}
)

// Enemy spawn rate on fake platforms, independent of score
const FakeEnemyChance = 80

// Moving platform speed: Between(MovingSpeedMin, MovingSpeedMax + min(score, MovingSpeedBonusCap))
const (
	MovingSpeedMin      = 50
	MovingSpeedMax      = 150
	MovingSpeedBonusCap = 100
)

// Lane jitter: min(LaneJitterBase + score/2, LaneJitterCap)
const (
	LaneJitterBase = 40.0
	LaneJitterCap  = 80.0
)

// Platform scale: 1.0 up to ScaleBreakpoint, then shrinks by ScaleShrinkPerPoint down to ScaleFloor
const (
	ScaleBreakpoint     = 100
	ScaleShrinkPerPoint = 0.002
	ScaleFloor          = 0.5
)

// Patrol behaviour for enemies on stationary platforms
const (
	PatrolScoreThreshold = 80
	PatrolChance         = 35
	PatrolSpeedBase      = 30.0
	PatrolSpeedPerPoint  = 0.25
	PatrolSpeedCap       = 90.0

	// PatrolBoostScore raises the patrol speed cap for very high scores
	PatrolBoostScore    = 400
	PatrolSpeedCapBoost = 140.0
)
