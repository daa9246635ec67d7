package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/chase/common"
	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// CameraView returns the world coordinate of the screen's top-left
// corner plus the zoom. Everything drawn in world space goes through
// this transform.
func CameraView(w *ecs.World) (camX, camY, zoom float64) {
	zoom = 1
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	camera, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if camera.Zoom > 0 {
		zoom = camera.Zoom
	}
	camX = camera.X - float64(common.BaseWidth)/(2*zoom)
	camY = camera.Y - float64(common.BaseHeight)/(2*zoom)
	return camX, camY, zoom
}

// Draw renders every sprite entity as a filled circle with a facing
// notch. Chasers and the player are circles; anything fancier belongs
// in its own pass.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	camX, camY, zoom := CameraView(w)

	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sprite *component.Sprite, transform *component.Transform) {
		x := float32((transform.X - camX) * zoom)
		y := float32((transform.Y - camY) * zoom)
		radius := float32(sprite.Radius * zoom)

		vector.DrawFilledCircle(screen, x, y, radius, sprite.Color, true)

		notch := color.RGBA{R: sprite.Color.R / 2, G: sprite.Color.G / 2, B: sprite.Color.B / 2, A: sprite.Color.A}
		tipX := x + float32(math.Cos(transform.Angle))*radius
		tipY := y + float32(math.Sin(transform.Angle))*radius
		vector.StrokeLine(screen, x, y, tipX, tipY, 1, notch, true)
	})
}
