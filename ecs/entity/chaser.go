package entity

import (
	"fmt"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/prefabs"
)

func NewChaser(w *ecs.World, spec *prefabs.ChaserSpec, x, y float64, spawnerID int, forceScale float64) (ecs.Entity, error) {
	if w.PhysicsWorld() == nil {
		return ecs.Entity{}, fmt.Errorf("entity: chaser needs a physics world")
	}
	if forceScale <= 0 {
		forceScale = 1
	}

	e := w.CreateEntity()
	body := w.PhysicsWorld().AddChaserBody(e, geom.Pt(x, y), spec.Radius, spec.Mass)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.ChaserComponent.Kind(), &component.Chaser{
		SpawnerID: spawnerID,
		SpawnedAt: w.Tick(),
		MaxForce:  spec.MaxForce * forceScale,
	}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: spec.Radius}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Radius: spec.Radius, Color: spec.Color.RGBA8()}); err != nil {
		return ecs.Entity{}, err
	}

	return e, nil
}
