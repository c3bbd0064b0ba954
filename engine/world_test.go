package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/lane-jumper/component"
	"github.com/lixenwraith/lane-jumper/core"
)

func TestSpawnAndCollaboratorAPI(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(core.KindEnemy, 100, -50, core.Attributes{Width: 12, Height: 12})

	if !w.Alive(e) {
		t.Fatal("Expected spawned entity to be alive")
	}
	if kind, _ := w.Kinds.Get(e); kind != core.KindEnemy {
		t.Errorf("Expected enemy kind, got %v", kind)
	}

	w.SetVelocity(e, 30, -10)
	vx, vy, ok := w.Velocity(e)
	if !ok || vx != 30 || vy != -10 {
		t.Errorf("Expected velocity (30,-10), got (%v,%v) ok=%v", vx, vy, ok)
	}

	x, y, ok := w.Position(e)
	if !ok || x != 100 || y != -50 {
		t.Errorf("Expected position (100,-50), got (%v,%v)", x, y)
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(core.KindSpring, 0, 0, core.Attributes{})
	w.Springs.Set(e, component.SpringComponent{})
	w.Attachments.Set(e, component.AttachmentComponent{Parent: 99})

	w.DestroyEntity(e)

	if w.Alive(e) {
		t.Error("Expected entity to be dead")
	}
	if w.Springs.Has(e) || w.Attachments.Has(e) || w.Bodies.Has(e) {
		t.Error("Expected every component to be removed")
	}
	if w.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", w.EntityCount())
	}
}

func TestOperationsOnDeadEntityAreNoOps(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(core.KindEnemy, 1, 2, core.Attributes{})
	w.DestroyEntity(e)

	w.SetVelocity(e, 10, 10)
	w.SetPosition(e, 5, 5)
	w.DestroyEntity(e)

	if _, _, ok := w.Position(e); ok {
		t.Error("Expected no position for a destroyed entity")
	}
	if w.Bodies.Has(e) {
		t.Error("Expected SetVelocity on a dead entity not to resurrect its body")
	}
}

func TestStoreSnapshotSurvivesMutation(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(core.KindPlatform, float64(i), 0, core.Attributes{})
	}

	visited := 0
	for _, e := range w.Kinds.All() {
		visited++
		w.DestroyEntity(e)
		w.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	}

	if visited != 5 {
		t.Errorf("Expected snapshot to visit 5 entities exactly once, got %d", visited)
	}
	if w.EntityCount() != 5 {
		t.Errorf("Expected 5 live entities, got %d", w.EntityCount())
	}
}

type orderSystem struct {
	priority int
	log      *[]int
}

func (s *orderSystem) Init()                {}
func (s *orderSystem) Name() string         { return "order" }
func (s *orderSystem) Update(time.Duration) { *s.log = append(*s.log, s.priority) }
func (s *orderSystem) Priority() int        { return s.priority }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []int
	for _, p := range []int{50, 10, 40, 20} {
		w.AddSystem(&orderSystem{priority: p, log: &log})
	}

	w.Update(16 * time.Millisecond)

	want := []int{10, 20, 40, 50}
	for i, p := range want {
		if log[i] != p {
			t.Fatalf("Expected order %v, got %v", want, log)
		}
	}
}

func TestClearResetsIDs(t *testing.T) {
	w := NewWorld()
	w.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	w.Spawn(core.KindPlatform, 0, 0, core.Attributes{})
	w.Clear()

	if w.EntityCount() != 0 {
		t.Errorf("Expected empty world, got %d", w.EntityCount())
	}
	if e := w.CreateEntity(); e != 1 {
		t.Errorf("Expected IDs to restart at 1, got %d", e)
	}
}
