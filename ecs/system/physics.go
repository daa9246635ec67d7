package system

import (
	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

const chaserDamping = 5.0

// PhysicsSystem advances the chipmunk space and copies body positions
// back into transforms. Chasers get velocity damping so force-driven
// steering settles instead of accelerating without bound.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}

	dt := w.Delta()

	ecs.ForEach2(w, component.ChaserComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.Chaser, body *component.PhysicsBody) {
		vel := body.Body.Velocity()
		damp := 1 / (1 + chaserDamping*dt)
		body.Body.SetVelocity(vel.X*damp, vel.Y*damp)
	})

	w.PhysicsWorld().Step(dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		pos := body.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}
