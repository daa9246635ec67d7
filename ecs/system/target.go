package system

import (
	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

// TargetSystem aims the flowfield at the player every frame. The field
// itself only re-arms propagation when the player crosses a tile
// boundary, but the fractional position still feeds flow smoothing.
type TargetSystem struct{}

func NewTargetSystem() *TargetSystem {
	return &TargetSystem{}
}

func (t *TargetSystem) Update(w *ecs.World) {
	if w == nil || w.Flowfield() == nil || w.Level() == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	w.Flowfield().SetTarget(w.Level().WorldToTile(transform.X, transform.Y))
}
