package level

import (
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
)

// Pool is the set of live platforms and their attached entities
type Pool struct {
	world *engine.World
}

// NewPool creates a pool view over the world's platform store
func NewPool(world *engine.World) *Pool {
	return &Pool{world: world}
}

// Live returns a snapshot of all platforms
func (p *Pool) Live() []core.Entity {
	return p.world.Platforms.All()
}

// Size returns the number of live platforms
func (p *Pool) Size() int {
	return p.world.Platforms.Count()
}

// Stale collects platforms whose center crossed below threshold
// The result is materialized before any platform is touched
func (p *Pool) Stale(threshold float64) []core.Entity {
	var stale []core.Entity
	for _, e := range p.world.Platforms.All() {
		b, ok := p.world.Bodies.Get(e)
		if ok && b.Y > threshold {
			stale = append(stale, e)
		}
	}
	return stale
}

// DetachAll destroys every enemy and spring bound to the platform and clears its list
// Returns the number of destroyed entities
func (p *Pool) DetachAll(platform core.Entity) int {
	pc, ok := p.world.Platforms.Get(platform)
	if !ok {
		return 0
	}

	destroyed := 0
	for _, child := range pc.Attached {
		if p.world.Alive(child) {
			p.world.DestroyEntity(child)
			destroyed++
		}
	}

	// Entities bound by parent reference but missing from the list
	for _, child := range p.world.Attachments.All() {
		if a, ok := p.world.Attachments.Get(child); ok && a.Parent == platform {
			p.world.DestroyEntity(child)
			destroyed++
		}
	}

	pc.Attached = nil
	p.world.Platforms.Set(platform, pc)
	return destroyed
}

// Topmost returns the smallest platform Y, ok is false when the pool is empty
func (p *Pool) Topmost() (y float64, ok bool) {
	for _, e := range p.world.Platforms.All() {
		b, exists := p.world.Bodies.Get(e)
		if !exists {
			continue
		}
		if !ok || b.Y < y {
			y, ok = b.Y, true
		}
	}
	return y, ok
}
