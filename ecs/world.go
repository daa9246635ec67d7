package ecs

import (
	"github.com/milk9111/chase/config"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/level"
	"github.com/milk9111/chase/nav"
)

// World owns entities, component storage, and the shared resources
// systems operate on. Storage is one sparse set per component kind.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	physics *PhysicsWorld
	flow    *nav.Flowfield
	cfg     *config.Config
	views   *config.DebugViews
	lvl     *level.Level

	dt   float64
	tick uint64

	paused bool
}

func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
	}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity from every store and frees its slot.
// The physics body, if any, is removed from the space first.
func (w *World) DestroyEntity(e Entity) {
	if !w.entities.isAlive(e) {
		return
	}
	if w.physics != nil {
		w.physics.removeEntity(e)
	}
	for _, store := range w.stores {
		store.Remove(e.ID)
	}
	w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = NewSparseSet()
		w.stores[id] = s
	}
	return s
}

func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	w.physics = pw
}

func (w *World) PhysicsWorld() *PhysicsWorld {
	return w.physics
}

func (w *World) SetFlowfield(f *nav.Flowfield) {
	w.flow = f
}

func (w *World) Flowfield() *nav.Flowfield {
	return w.flow
}

func (w *World) SetConfig(cfg *config.Config) {
	w.cfg = cfg
}

func (w *World) Config() *config.Config {
	return w.cfg
}

func (w *World) SetDebugViews(views *config.DebugViews) {
	w.views = views
}

func (w *World) DebugViews() *config.DebugViews {
	return w.views
}

func (w *World) SetLevel(lvl *level.Level) {
	w.lvl = lvl
}

func (w *World) Level() *level.Level {
	return w.lvl
}

func (w *World) SetDelta(dt float64) {
	w.dt = dt
}

func (w *World) Delta() float64 {
	return w.dt
}

func (w *World) AdvanceTick() {
	w.tick++
}

func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

func (w *World) Paused() bool {
	return w.paused
}
