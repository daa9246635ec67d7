package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update integrates the player body's velocity from the input snapshot:
// accelerate toward the stick direction, brake when idle, and bleed off
// any speed above the cap so releasing boost decays smoothly. The reset
// key asks the spawn system to restore the level.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	inputEntity, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, inputEntity, component.InputComponent.Kind())
	if !ok {
		return
	}

	if input.Reset {
		w.Events().Push(ecs.ResetRequested{})
	}

	dt := w.Delta()

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PlayerControllerComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, controller *component.PlayerController, body *component.PhysicsBody) {
			controller.Boosting = input.Boost

			if input.Noclip && w.PhysicsWorld() != nil {
				controller.Noclip = !controller.Noclip
				w.PhysicsWorld().SetNoclip(e, controller.Noclip)
			}

			vel := body.Body.Velocity()
			moving := input.MoveX != 0 || input.MoveY != 0
			if moving {
				vel = vel.Add(cp.Vector{X: input.MoveX, Y: input.MoveY}.Mult(controller.Accel * dt))
			} else {
				vel = vel.Mult(1 / (1 + controller.Brake*dt))
			}

			maxSpeed := controller.MoveSpeed
			if controller.Boosting {
				maxSpeed *= controller.BoostMultiplier
			}
			if speed := vel.Length(); speed > maxSpeed {
				// Decay only the excess so the cap is a soft ceiling.
				eased := maxSpeed + (speed-maxSpeed)/(1+controller.Drag*dt)
				vel = vel.Mult(eased / speed)
			}

			body.Body.SetVelocity(vel.X, vel.Y)
		})
}
