package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Kinds       *Store[core.EntityKind]
	Bodies      *Store[component.BodyComponent]
	Platforms   *Store[component.PlatformComponent]
	Oscillation *Store[component.OscillationComponent]
	Attachments *Store[component.AttachmentComponent]
	Patrols     *Store[component.PatrolComponent]
	Enemies     *Store[component.EnemyComponent]
	Springs     *Store[component.SpringComponent]
	Players     *Store[component.PlayerComponent]

	stores  []AnyStore
	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Kinds:        NewStore[core.EntityKind](),
		Bodies:       NewStore[component.BodyComponent](),
		Platforms:    NewStore[component.PlatformComponent](),
		Oscillation:  NewStore[component.OscillationComponent](),
		Attachments:  NewStore[component.AttachmentComponent](),
		Patrols:      NewStore[component.PatrolComponent](),
		Enemies:      NewStore[component.EnemyComponent](),
		Springs:      NewStore[component.SpringComponent](),
		Players:      NewStore[component.PlayerComponent](),
	}
	w.stores = []AnyStore{
		w.Kinds, w.Bodies, w.Platforms, w.Oscillation, w.Attachments,
		w.Patrols, w.Enemies, w.Springs, w.Players,
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an unknown or already destroyed entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// Alive reports whether the entity still exists
func (w *World) Alive(e core.Entity) bool {
	return e != 0 && w.Kinds.Has(e)
}

// Clear removes all entities and components, systems stay registered
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, s := range w.stores {
		s.Clear()
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.Kinds.Count()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (insertion sort, small N, stable)
	for i := 1; i < len(w.systems); i++ {
		for j := i; j > 0 && w.systems[j-1].Priority() > w.systems[j].Priority(); j-- {
			w.systems[j-1], w.systems[j] = w.systems[j], w.systems[j-1]
		}
	}
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(dt)
	}
}

// InitSystems resets every registered system for a new run
func (w *World) InitSystems() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Init()
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	return systems
}

// ===== COLLABORATOR API =====

// Spawn creates an entity of the given kind with a body centered at (x, y)
func (w *World) Spawn(kind core.EntityKind, x, y float64, attrs core.Attributes) core.Entity {
	e := w.CreateEntity()
	w.Kinds.Set(e, kind)
	w.Bodies.Set(e, component.BodyComponent{
		X:       x,
		Y:       y,
		Width:   attrs.Width,
		Height:  attrs.Height,
		Gravity: attrs.Gravity,
	})
	return e
}

// Destroy removes an entity, alias of DestroyEntity
func (w *World) Destroy(e core.Entity) {
	w.DestroyEntity(e)
}

// SetVelocity sets the velocity of a live body, no-op otherwise
func (w *World) SetVelocity(e core.Entity, vx, vy float64) {
	b, ok := w.Bodies.Get(e)
	if !ok {
		return
	}
	b.VX, b.VY = vx, vy
	w.Bodies.Set(e, b)
}

// SetPosition moves a live body, no-op otherwise
func (w *World) SetPosition(e core.Entity, x, y float64) {
	b, ok := w.Bodies.Get(e)
	if !ok {
		return
	}
	b.X, b.Y = x, y
	w.Bodies.Set(e, b)
}

// Position returns the body center, ok is false for dead entities
func (w *World) Position(e core.Entity) (x, y float64, ok bool) {
	b, ok := w.Bodies.Get(e)
	return b.X, b.Y, ok
}

// Velocity returns the body velocity, ok is false for dead entities
func (w *World) Velocity(e core.Entity) (vx, vy float64, ok bool) {
	b, ok := w.Bodies.Get(e)
	return b.VX, b.VY, ok
}
