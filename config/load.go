package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lane-jumper/parameter"
)

var (
	// ErrInvalidTuning reports a tuning value outside its usable domain
	ErrInvalidTuning = errors.New("invalid tuning")
	// ErrUnreachableGap reports a platform gap the player cannot jump
	ErrUnreachableGap = errors.New("platform gap exceeds jump reach")
)

// Load reads a YAML file over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks structural sanity and the jump-reach constraint
func (t *Tuning) Validate() error {
	g := t.Geometry
	switch {
	case g.ScreenWidth <= 0 || g.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalidTuning, g.ScreenWidth, g.ScreenHeight)
	case g.Zoom <= 0:
		return fmt.Errorf("%w: zoom %v", ErrInvalidTuning, g.Zoom)
	case len(g.LaneFractions) == 0:
		return fmt.Errorf("%w: no lanes", ErrInvalidTuning)
	case t.SafeMargin()*2 >= g.ScreenWidth:
		return fmt.Errorf("%w: safe margin %v leaves no play area", ErrInvalidTuning, t.SafeMargin())
	}
	for _, f := range g.LaneFractions {
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: lane fraction %v", ErrInvalidTuning, f)
		}
	}

	// Every trap position must leave room for a twin past the pair distance on one side
	if half := (g.ScreenWidth - 2*t.SafeMargin()) / 2; half <= t.PairDistance()+parameter.PairClearance {
		return fmt.Errorf("%w: pair distance %v does not fit half play width %v", ErrInvalidTuning, t.PairDistance(), half)
	}

	p := t.Physics
	if p.Gravity <= 0 || p.BounceSpeed <= 0 {
		return fmt.Errorf("%w: gravity %v bounce %v", ErrInvalidTuning, p.Gravity, p.BounceSpeed)
	}

	l := t.Level
	switch {
	case l.GapMin <= 0 || l.GapMax < l.GapMin:
		return fmt.Errorf("%w: gap range [%d,%d]", ErrInvalidTuning, l.GapMin, l.GapMax)
	case l.PoolSize <= 0:
		return fmt.Errorf("%w: pool size %d", ErrInvalidTuning, l.PoolSize)
	}
	if reach := t.MaxJumpHeight(); float64(l.GapMax) >= reach || l.InitialSpacing >= reach {
		return fmt.Errorf("%w: gap %d / spacing %v vs reach %.1f", ErrUnreachableGap, l.GapMax, l.InitialSpacing, reach)
	}

	gp := t.Gameplay
	switch {
	case gp.TimeLimit <= 0 || gp.TimerInterval <= 0:
		return fmt.Errorf("%w: timer %d every %v", ErrInvalidTuning, gp.TimeLimit, gp.TimerInterval)
	case gp.HeightDivisor <= 0:
		return fmt.Errorf("%w: height divisor %v", ErrInvalidTuning, gp.HeightDivisor)
	case len(gp.FakeEnemyOffsets) == 0:
		return fmt.Errorf("%w: no fake enemy offsets", ErrInvalidTuning)
	}
	return nil
}
