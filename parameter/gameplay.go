package parameter

import "time"

// Session timing
const (
	// TimeLimit is the countdown at the start of each run, in seconds
	TimeLimit = 200

	// TimerInterval is the countdown tick period
	TimerInterval = 1 * time.Second
)

// Scoring
const (
	// StompBonus is added to the score when an enemy is stomped
	StompBonus = 20

	// HeightScoreDivisor converts climbed world units into score points
	HeightScoreDivisor = 10.0
)

// Boosts and fairness
const (
	SpringChance = 20

	// EnemySafeCount is how many platform configurations skip the enemy roll after a spring
	EnemySafeCount = 5
)

// FakeEnemyOffsets are the horizontal offsets an enemy may take on a fake platform
var FakeEnemyOffsets = []float64{-20, 0, 20}
