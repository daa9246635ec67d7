package entity

import (
	"fmt"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/level"
	"github.com/milk9111/chase/prefabs"
)

func NewCamera(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{X: x, Y: y, Zoom: 1}); err != nil {
		return ecs.Entity{}, err
	}
	return e, nil
}

func NewInput(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return ecs.Entity{}, err
	}
	return e, nil
}

// Populate instantiates the level's object layer: the player at its
// spawn point, spawner entities, and trigger sensors. A level without a
// player spawn is unusable.
func Populate(w *ecs.World, lvl *level.Level, playerSpec *prefabs.PlayerSpec) error {
	var playerSpawned bool

	for _, obj := range lvl.Objects {
		switch obj.Type {
		case level.ObjectPlayerSpawn:
			cx, cy := obj.Center()
			if _, err := NewPlayer(w, playerSpec, cx, cy); err != nil {
				return fmt.Errorf("entity: populate %q: %w", obj.Name, err)
			}
			if _, err := NewCamera(w, cx, cy); err != nil {
				return fmt.Errorf("entity: populate %q: %w", obj.Name, err)
			}
			playerSpawned = true

		case level.ObjectSpawner:
			if err := newSpawner(w, obj); err != nil {
				return fmt.Errorf("entity: populate %q: %w", obj.Name, err)
			}

		case level.ObjectTrigger:
			if err := newTrigger(w, obj); err != nil {
				return fmt.Errorf("entity: populate %q: %w", obj.Name, err)
			}
		}
	}

	if !playerSpawned {
		return fmt.Errorf("entity: level has no player spawn")
	}
	return nil
}

func newSpawner(w *ecs.World, obj level.Object) error {
	id, err := obj.Props.Int("spawner_id")
	if err != nil {
		return err
	}

	cx, cy := obj.Center()
	active := obj.Props.BoolOr("active", false)
	spawner := &component.Spawner{
		ID:        id,
		X:         cx,
		Y:         cy,
		NumSpawn:  obj.Props.IntOr("num_spawn", 1),
		Delay:     obj.Props.FloatOr("delay", 0),
		Interval:  obj.Props.FloatOr("interval", 1),
		Immediate: obj.Props.BoolOr("immediate", false),
		Repeats:   obj.Props.BoolOr("repeats", false),

		DefaultActive: active,
		Active:        active,
	}
	spawner.Timer = spawner.Delay
	if spawner.Immediate {
		spawner.Timer = 0
	}

	e := w.CreateEntity()
	return ecs.Add(w, e, component.SpawnerComponent.Kind(), spawner)
}

func newTrigger(w *ecs.World, obj level.Object) error {
	id, err := obj.Props.Int("spawner_id")
	if err != nil {
		return err
	}

	cx, cy := obj.Center()
	ellipse := obj.Shape == level.ShapeEllipse
	if pw := w.PhysicsWorld(); pw != nil {
		if ellipse {
			pw.AddTriggerEllipse(geom.Pt(cx, cy), obj.Width, obj.Height, id)
		} else {
			pw.AddTriggerRect(geom.Pt(cx, cy), obj.Width, obj.Height, id)
		}
	}

	e := w.CreateEntity()
	return ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		SpawnerID: id,
		X:         cx,
		Y:         cy,
		Width:     obj.Width,
		Height:    obj.Height,
		Ellipse:   ellipse,
	})
}
