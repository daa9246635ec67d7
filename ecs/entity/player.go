package entity

import (
	"fmt"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if w.PhysicsWorld() == nil {
		return ecs.Entity{}, fmt.Errorf("entity: player needs a physics world")
	}

	e := w.CreateEntity()
	body := w.PhysicsWorld().AddPlayerBody(e, geom.Pt(x, y), spec.Radius, spec.Mass)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		MoveSpeed:       spec.MoveSpeed,
		BoostMultiplier: spec.BoostMultiplier,
		Accel:           spec.Accel,
		Brake:           spec.Brake,
		Drag:            spec.Drag,
		SpawnX:          x,
		SpawnY:          y,
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
