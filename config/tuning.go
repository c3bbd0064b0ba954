// Package config holds the runtime tuning of a session.
// Defaults come from the parameter package and may be overridden by a YAML file.
package config

import (
	"time"

	"github.com/lixenwraith/lane-jumper/parameter"
)

// Tuning is the full set of knobs read by the simulation
type Tuning struct {
	Geometry   Geometry   `yaml:"geometry"`
	Physics    Physics    `yaml:"physics"`
	Level      Level      `yaml:"level"`
	Difficulty Difficulty `yaml:"difficulty"`
	Gameplay   Gameplay   `yaml:"gameplay"`
}

// Geometry describes the play area, entity sizes and lanes
type Geometry struct {
	ScreenWidth    float64   `yaml:"screen_width"`
	ScreenHeight   float64   `yaml:"screen_height"`
	Zoom           float64   `yaml:"zoom"`
	PlayerSize     float64   `yaml:"player_size"`
	PlatformWidth  float64   `yaml:"platform_width"`
	PlatformHeight float64   `yaml:"platform_height"`
	EnemySize      float64   `yaml:"enemy_size"`
	SpringWidth    float64   `yaml:"spring_width"`
	SpringHeight   float64   `yaml:"spring_height"`
	SafeMarginPad  float64   `yaml:"safe_margin_pad"`
	LaneFractions  []float64 `yaml:"lanes"`
	SafeLaneFrac   float64   `yaml:"safe_lane_fraction"`
}

// Physics holds gravity and impulse speeds (world units per second)
type Physics struct {
	Gravity        float64 `yaml:"gravity"`
	BounceSpeed    float64 `yaml:"bounce_speed"`
	StompSpeed     float64 `yaml:"stomp_speed"`
	SpringSpeed    float64 `yaml:"spring_speed"`
	RunSpeed       float64 `yaml:"run_speed"`
	BounceNudge    float64 `yaml:"bounce_nudge"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
}

// Level holds population and recycling layout
type Level struct {
	StartPlatformY     float64 `yaml:"start_platform_y"`
	PlayerStartY       float64 `yaml:"player_start_y"`
	InitialSpacing     float64 `yaml:"initial_spacing"`
	PoolSize           int     `yaml:"pool_size"`
	StartPlatformCount int     `yaml:"start_platform_count"`
	InitialJitter      int     `yaml:"initial_jitter"`
	GapMin             int     `yaml:"gap_min"`
	GapMax             int     `yaml:"gap_max"`
	DestroyMargin      float64 `yaml:"destroy_margin"`
	PairJitter         int     `yaml:"pair_jitter"`
}

// Difficulty holds the score-driven curve
type Difficulty struct {
	BreakpointMid  int    `yaml:"breakpoint_mid"`
	BreakpointHigh int    `yaml:"breakpoint_high"`
	TrapChance     [3]int `yaml:"trap_chance"`
	MovingChance   [3]int `yaml:"moving_chance"`
	EnemyChance    [3]int `yaml:"enemy_chance"`
	FakeEnemy      int    `yaml:"fake_enemy_chance"`

	MovingSpeedMin      int `yaml:"moving_speed_min"`
	MovingSpeedMax      int `yaml:"moving_speed_max"`
	MovingSpeedBonusCap int `yaml:"moving_speed_bonus_cap"`

	LaneJitterBase float64 `yaml:"lane_jitter_base"`
	LaneJitterCap  float64 `yaml:"lane_jitter_cap"`

	ScaleBreakpoint     int     `yaml:"scale_breakpoint"`
	ScaleShrinkPerPoint float64 `yaml:"scale_shrink_per_point"`
	ScaleFloor          float64 `yaml:"scale_floor"`

	PatrolScoreThreshold int     `yaml:"patrol_score_threshold"`
	PatrolChance         int     `yaml:"patrol_chance"`
	PatrolSpeedBase      float64 `yaml:"patrol_speed_base"`
	PatrolSpeedPerPoint  float64 `yaml:"patrol_speed_per_point"`
	PatrolSpeedCap       float64 `yaml:"patrol_speed_cap"`
	PatrolBoostScore     int     `yaml:"patrol_boost_score"`
	PatrolSpeedCapBoost  float64 `yaml:"patrol_speed_cap_boost"`

	// ExemptPairFromMoving keeps a trap's paired real platform stationary
	ExemptPairFromMoving bool `yaml:"exempt_pair_from_moving"`
}

// Gameplay holds scoring, timer and fairness rules
type Gameplay struct {
	TimeLimit        int           `yaml:"time_limit"`
	TimerInterval    time.Duration `yaml:"timer_interval"`
	StompBonus       int           `yaml:"stomp_bonus"`
	HeightDivisor    float64       `yaml:"height_divisor"`
	SpringChance     int           `yaml:"spring_chance"`
	EnemySafeCount   int           `yaml:"enemy_safe_count"`
	FakeEnemyOffsets []float64     `yaml:"fake_enemy_offsets"`
	CameraLerp       float64       `yaml:"camera_lerp"`
	CameraAnchor     float64       `yaml:"camera_anchor"`
	CameraDeadzone   float64       `yaml:"camera_deadzone"`
	ShakeDuration    time.Duration `yaml:"shake_duration"`
}

// Default returns the built-in tuning
func Default() Tuning {
	return Tuning{
		Geometry: Geometry{
			ScreenWidth:    parameter.ScreenWidth,
			ScreenHeight:   parameter.ScreenHeight,
			Zoom:           parameter.GameZoom,
			PlayerSize:     parameter.PlayerSize,
			PlatformWidth:  parameter.PlatformWidth,
			PlatformHeight: parameter.PlatformHeight,
			EnemySize:      parameter.EnemySize,
			SpringWidth:    parameter.SpringWidth,
			SpringHeight:   parameter.SpringHeight,
			SafeMarginPad:  parameter.SafeMarginPad,
			LaneFractions:  append([]float64(nil), parameter.LaneFractions...),
			SafeLaneFrac:   parameter.SafeLaneFraction,
		},
		Physics: Physics{
			Gravity:        parameter.Gravity,
			BounceSpeed:    parameter.BounceSpeed,
			StompSpeed:     parameter.StompSpeed,
			SpringSpeed:    parameter.SpringSpeed,
			RunSpeed:       parameter.PlayerRunSpeed,
			BounceNudge:    parameter.BounceNudge,
			StompTolerance: parameter.StompTolerance,
		},
		Level: Level{
			StartPlatformY:     parameter.StartPlatformY,
			PlayerStartY:       parameter.PlayerStartY,
			InitialSpacing:     parameter.InitialPlatformSpacing,
			PoolSize:           parameter.InitialPoolSize,
			StartPlatformCount: parameter.StartPlatformCount,
			InitialJitter:      parameter.InitialJitter,
			GapMin:             parameter.GapMin,
			GapMax:             parameter.GapMax,
			DestroyMargin:      parameter.DestroyMargin,
			PairJitter:         parameter.PairJitter,
		},
		Difficulty: Difficulty{
			BreakpointMid:        parameter.DifficultyBreakpointMid,
			BreakpointHigh:       parameter.DifficultyBreakpointHigh,
			TrapChance:           parameter.TrapChanceSteps,
			MovingChance:         parameter.MovingChanceSteps,
			EnemyChance:          parameter.EnemyChanceSteps,
			FakeEnemy:            parameter.FakeEnemyChance,
			MovingSpeedMin:       parameter.MovingSpeedMin,
			MovingSpeedMax:       parameter.MovingSpeedMax,
			MovingSpeedBonusCap:  parameter.MovingSpeedBonusCap,
			LaneJitterBase:       parameter.LaneJitterBase,
			LaneJitterCap:        parameter.LaneJitterCap,
			ScaleBreakpoint:      parameter.ScaleBreakpoint,
			ScaleShrinkPerPoint:  parameter.ScaleShrinkPerPoint,
			ScaleFloor:           parameter.ScaleFloor,
			PatrolScoreThreshold: parameter.PatrolScoreThreshold,
			PatrolChance:         parameter.PatrolChance,
			PatrolSpeedBase:      parameter.PatrolSpeedBase,
			PatrolSpeedPerPoint:  parameter.PatrolSpeedPerPoint,
			PatrolSpeedCap:       parameter.PatrolSpeedCap,
			PatrolBoostScore:     parameter.PatrolBoostScore,
			PatrolSpeedCapBoost:  parameter.PatrolSpeedCapBoost,
			ExemptPairFromMoving: true,
		},
		Gameplay: Gameplay{
			TimeLimit:        parameter.TimeLimit,
			TimerInterval:    parameter.TimerInterval,
			StompBonus:       parameter.StompBonus,
			HeightDivisor:    parameter.HeightScoreDivisor,
			SpringChance:     parameter.SpringChance,
			EnemySafeCount:   parameter.EnemySafeCount,
			FakeEnemyOffsets: append([]float64(nil), parameter.FakeEnemyOffsets...),
			CameraLerp:       parameter.CameraLerp,
			CameraAnchor:     parameter.CameraAnchor,
			CameraDeadzone:   parameter.CameraDeadzone,
			ShakeDuration:    parameter.ShakeDuration,
		},
	}
}

// SafeMargin is the minimum distance of a platform center from either screen edge
func (t *Tuning) SafeMargin() float64 {
	return t.Geometry.PlatformWidth/2 + t.Geometry.SafeMarginPad
}

// PairDistance is the minimum horizontal distance between a trap and its real twin
func (t *Tuning) PairDistance() float64 {
	return t.Geometry.ScreenWidth * t.Geometry.SafeLaneFrac
}

// ViewWidth is the horizontal extent of the camera view
func (t *Tuning) ViewWidth() float64 {
	return t.Geometry.ScreenWidth / t.Geometry.Zoom
}

// ViewHeight is the vertical extent of the camera view
func (t *Tuning) ViewHeight() float64 {
	return t.Geometry.ScreenHeight / t.Geometry.Zoom
}

// MaxJumpHeight is the apex height reached from a platform bounce: v²/2g
func (t *Tuning) MaxJumpHeight() float64 {
	return t.Physics.BounceSpeed * t.Physics.BounceSpeed / (2 * t.Physics.Gravity)
}
