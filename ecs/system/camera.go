package system

import (
	"math"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

// CameraSystem trails the player on a leash: the camera stays put until
// the player is more than the follow distance away, then moves just
// enough to keep them at the edge of that circle.
type CameraSystem struct {
	camEntity    ecs.Entity
	playerEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || w.Config() == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if !cs.playerEntity.Valid() || !w.IsAlive(cs.playerEntity) {
		playerEntity, ok := ecs.First(w, component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		cs.playerEntity = playerEntity
	}

	transform, ok := ecs.Get(w, cs.playerEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	followDist := w.Config().CameraFollowDist
	dx := transform.X - camera.X
	dy := transform.Y - camera.Y
	dist := math.Hypot(dx, dy)
	if dist <= followDist || dist == 0 {
		return
	}

	pull := (dist - followDist) / dist
	camera.X += dx * pull
	camera.Y += dy * pull
}
