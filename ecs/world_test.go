package ecs

import (
	"testing"

	"github.com/milk9111/chase/ecs/component"
)

type testPos struct {
	X, Y float64
}

type testVel struct {
	X, Y float64
}

type testTag struct{}

var (
	testPosComponent = component.NewComponent[testPos]()
	testVelComponent = component.NewComponent[testVel]()
	testTagComponent = component.NewComponent[testTag]()
)

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Fatalf("expected distinct entities, got %v and %v", a, b)
	}
	if !w.IsAlive(a) || !w.IsAlive(b) {
		t.Fatal("expected fresh entities to be alive")
	}

	w.DestroyEntity(a)
	if w.IsAlive(a) {
		t.Fatal("expected destroyed entity to be dead")
	}

	// Slot reuse bumps the generation so stale handles stay dead.
	c := w.CreateEntity()
	if c.ID != a.ID {
		t.Fatalf("expected slot %d to be reused, got %d", a.ID, c.ID)
	}
	if c.Gen == a.Gen {
		t.Fatal("expected reused slot to have a new generation")
	}
	if w.IsAlive(a) {
		t.Fatal("stale handle must not come back to life")
	}
	if !w.IsAlive(c) {
		t.Fatal("expected reused entity to be alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, testPosComponent.Kind(), &testPos{X: 3, Y: 4}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	pos, ok := Get(w, e, testPosComponent.Kind())
	if !ok {
		t.Fatal("expected component after Add")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Fatalf("unexpected value %+v", pos)
	}

	pos.X = 7
	again, _ := Get(w, e, testPosComponent.Kind())
	if again.X != 7 {
		t.Fatal("Get must return a pointer to the stored component")
	}

	if Has(w, e, testVelComponent.Kind()) {
		t.Fatal("entity should not have an unadded component")
	}

	Remove(w, e, testPosComponent.Kind())
	if _, ok := Get(w, e, testPosComponent.Kind()); ok {
		t.Fatal("expected component gone after Remove")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add[testPos](w, e, testPosComponent.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	w.DestroyEntity(e)
	if err := Add(w, e, testPosComponent.Kind(), &testPos{}); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyClearsComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, e, testPosComponent.Kind(), &testPos{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	w.DestroyEntity(e)

	reused := w.CreateEntity()
	if reused.ID != e.ID {
		t.Fatalf("expected slot reuse, got %d want %d", reused.ID, e.ID)
	}
	if _, ok := Get(w, reused, testPosComponent.Kind()); ok {
		t.Fatal("reused entity must not inherit the old entity's components")
	}
}

func TestForEach2MatchesBothComponents(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	if err := Add(w, both, testPosComponent.Kind(), &testPos{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, both, testVelComponent.Kind(), &testVel{X: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	posOnly := w.CreateEntity()
	if err := Add(w, posOnly, testPosComponent.Kind(), &testPos{X: 9}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var visited []Entity
	ForEach2(w, testPosComponent.Kind(), testVelComponent.Kind(), func(e Entity, pos *testPos, vel *testVel) {
		visited = append(visited, e)
		pos.X += vel.X
	})

	if len(visited) != 1 || visited[0] != both {
		t.Fatalf("expected only the entity with both components, got %v", visited)
	}
	pos, _ := Get(w, both, testPosComponent.Kind())
	if pos.X != 3 {
		t.Fatalf("expected mutation through the pointer, got %v", pos.X)
	}
}

func TestForEachAllowsDestroyMidIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, testTagComponent.Kind(), &testTag{}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	visited := 0
	ForEach(w, testTagComponent.Kind(), func(e Entity, _ *testTag) {
		visited++
		w.DestroyEntity(e)
	})

	if visited != 5 {
		t.Fatalf("expected to visit all 5 entities, visited %d", visited)
	}
	if n := Count(w, testTagComponent.Kind()); n != 0 {
		t.Fatalf("expected no tagged entities left, got %d", n)
	}
}

func TestFirstAndCount(t *testing.T) {
	w := NewWorld()

	if _, ok := First(w, testTagComponent.Kind()); ok {
		t.Fatal("First on an empty store must report false")
	}

	e := w.CreateEntity()
	if err := Add(w, e, testTagComponent.Kind(), &testTag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := First(w, testTagComponent.Kind())
	if !ok || got != e {
		t.Fatalf("First = %v, %v; want %v, true", got, ok, e)
	}
	if n := Count(w, testTagComponent.Kind()); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()

	w.Events().Push(TriggerFired{SpawnerID: 2})
	w.Events().Push(ResetRequested{})

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if fired, ok := events[0].(TriggerFired); !ok || fired.SpawnerID != 2 {
		t.Fatalf("unexpected first event %v", events[0])
	}
	if _, ok := events[1].(ResetRequested); !ok {
		t.Fatalf("unexpected second event %v", events[1])
	}
	if w.Events().Len() != 0 {
		t.Fatal("expected queue empty after drain")
	}
}
