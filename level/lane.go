// Package level generates the endless platform layout: lanes, the difficulty
// curve, the platform pool and the procedural spawner that refills it.
package level

import (
	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/parameter"
)

// Lanes is the static horizontal layout used to bias platform placement
type Lanes struct {
	centers    []float64
	minX, maxX float64
}

// NewLanes builds lane centers from the tuning's screen fractions
func NewLanes(t *config.Tuning) Lanes {
	w := t.Geometry.ScreenWidth
	centers := make([]float64, len(t.Geometry.LaneFractions))
	for i, f := range t.Geometry.LaneFractions {
		centers[i] = w * f
	}
	margin := t.SafeMargin()
	return Lanes{
		centers: centers,
		minX:    margin,
		maxX:    w - margin,
	}
}

// Count returns the number of lanes
func (l Lanes) Count() int { return len(l.centers) }

// Center returns the x of lane i
func (l Lanes) Center(i int) float64 { return l.centers[i] }

// Bounds returns the play-area limits for platform centers
func (l Lanes) Bounds() (minX, maxX float64) { return l.minX, l.maxX }

// Pick chooses a lane uniformly
func (l Lanes) Pick(r core.Rand) (idx int, x float64) {
	idx = r.Intn(len(l.centers))
	return idx, l.centers[idx]
}

// Clamp restricts x to the play area
func (l Lanes) Clamp(x float64) float64 {
	return core.Clamp(x, l.minX, l.maxX)
}

// SafeFrom returns the lanes farther than minDist from x
// When no lane qualifies the farthest lane is returned so the caller always has a choice
func (l Lanes) SafeFrom(x, minDist float64) []int {
	safe := make([]int, 0, len(l.centers))
	farthest, farDist := 0, -1.0
	for i, c := range l.centers {
		d := core.Abs(c - x)
		if d > minDist {
			safe = append(safe, i)
		}
		if d > farDist {
			farthest, farDist = i, d
		}
	}
	if len(safe) == 0 {
		safe = append(safe, farthest)
	}
	return safe
}

// Away returns the x just past minDist from x on the side with more room, clamped
func (l Lanes) Away(x, minDist float64) float64 {
	step := minDist + parameter.PairClearance
	if x-l.minX > l.maxX-x {
		return l.Clamp(x - step)
	}
	return l.Clamp(x + step)
}

// Nearest returns the lane closest to x
func (l Lanes) Nearest(x float64) int {
	best, bestDist := 0, -1.0
	for i, c := range l.centers {
		d := core.Abs(c - x)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
