package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/nav"
)

var (
	debugWallColor    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	debugFlowColor    = color.RGBA{R: 80, G: 200, B: 255, A: 180}
	debugObjectColor  = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	debugTriggerColor = color.RGBA{R: 255, G: 220, B: 90, A: 255}
)

// DebugSystem draws the toggleable overlays: level objects, the flow
// arrows, the wall colliders, and the perf readout. Clicking while the
// flowfield view is up probes the cost of the tile under the cursor.
type DebugSystem struct {
	outlines []nav.Outline

	probeTX, probeTY int
	probeCost        uint32
	probeReachable   bool
	probeActive      bool
}

func NewDebugSystem(outlines []nav.Outline) *DebugSystem {
	return &DebugSystem{outlines: outlines}
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil {
		return
	}
	views := w.DebugViews()
	if views == nil {
		return
	}

	camX, camY, zoom := CameraView(w)

	if views.RenderFlowfield {
		d.updateProbe(w, camX, camY, zoom)
		d.drawFlowfield(w, screen, camX, camY, zoom)
		d.drawProbe(screen)
	} else {
		d.probeActive = false
	}
	if views.RenderPhysics {
		d.drawWalls(screen, camX, camY, zoom)
	}
	if views.RenderObjects {
		d.drawObjects(w, screen, camX, camY, zoom)
	}
	if views.PerfOverlay {
		d.drawPerf(w, screen)
	}
}

func (d *DebugSystem) drawFlowfield(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	flow := w.Flowfield()
	lvl := w.Level()
	if flow == nil || lvl == nil || w.Config() == nil {
		return
	}

	cfg := w.Config()
	tileSize := lvl.TileSize
	arrow := tileSize * 0.35

	for ty := 0; ty < flow.Height(); ty++ {
		for tx := 0; tx < flow.Width(); tx++ {
			dir := flow.FlowAt(float64(tx)+0.5, float64(ty)+0.5, cfg.FlowfieldSmooth, cfg.FlowCostThreshold)
			if !dir.Valid() {
				continue
			}

			cx := (float64(tx)+0.5)*tileSize - camX
			cy := (float64(ty)+0.5)*tileSize - camY
			x1 := float32(cx * zoom)
			y1 := float32(cy * zoom)
			x2 := float32((cx + dir.X*arrow) * zoom)
			y2 := float32((cy + dir.Y*arrow) * zoom)
			vector.StrokeLine(screen, x1, y1, x2, y2, 1, debugFlowColor, false)
			vector.DrawFilledCircle(screen, x2, y2, 1.5, debugFlowColor, false)
		}
	}
}

func (d *DebugSystem) updateProbe(w *ecs.World, camX, camY, zoom float64) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	flow := w.Flowfield()
	lvl := w.Level()
	if flow == nil || lvl == nil || zoom == 0 {
		return
	}

	mx, my := ebiten.CursorPosition()
	wx := float64(mx)/zoom + camX
	wy := float64(my)/zoom + camY
	tx, ty := lvl.WorldToTile(wx, wy)
	idx, ok := flow.IndexAt(tx, ty)
	if !ok {
		d.probeActive = false
		return
	}

	d.probeTX, d.probeTY = int(tx), int(ty)
	d.probeCost, d.probeReachable = flow.CostAt(idx)
	d.probeActive = true
}

func (d *DebugSystem) drawWalls(screen *ebiten.Image, camX, camY, zoom float64) {
	for _, outline := range d.outlines {
		for _, pair := range outline.Rigid {
			a := outline.Vertices[pair[0]]
			b := outline.Vertices[pair[1]]
			vector.StrokeLine(screen,
				float32((a.X-camX)*zoom), float32((a.Y-camY)*zoom),
				float32((b.X-camX)*zoom), float32((b.Y-camY)*zoom),
				1, debugWallColor, true)
		}
	}
}

func (d *DebugSystem) drawObjects(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, spawner *component.Spawner) {
		x := float32((spawner.X - camX) * zoom)
		y := float32((spawner.Y - camY) * zoom)
		vector.StrokeLine(screen, x-4, y, x+4, y, 1, debugObjectColor, false)
		vector.StrokeLine(screen, x, y-4, x, y+4, 1, debugObjectColor, false)
	})

	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, trigger *component.Trigger) {
		if trigger.Ellipse {
			drawEllipse(screen,
				(trigger.X-camX)*zoom, (trigger.Y-camY)*zoom,
				trigger.Width/2*zoom, trigger.Height/2*zoom)
			return
		}
		vector.StrokeRect(screen,
			float32((trigger.X-trigger.Width/2-camX)*zoom),
			float32((trigger.Y-trigger.Height/2-camY)*zoom),
			float32(trigger.Width*zoom), float32(trigger.Height*zoom),
			1, debugTriggerColor, false)
	})
}

func drawEllipse(screen *ebiten.Image, cx, cy, rx, ry float64) {
	const segments = 24
	prevX := float32(cx + rx)
	prevY := float32(cy)
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		x := float32(cx + rx*math.Cos(theta))
		y := float32(cy + ry*math.Sin(theta))
		vector.StrokeLine(screen, prevX, prevY, x, y, 1, debugTriggerColor, false)
		prevX, prevY = x, y
	}
}

func (d *DebugSystem) drawProbe(screen *ebiten.Image) {
	if !d.probeActive {
		return
	}
	cost := "unreachable"
	if d.probeReachable {
		cost = fmt.Sprintf("%d", d.probeCost)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tile (%d, %d) cost %s", d.probeTX, d.probeTY, cost), 0, 16)
}

func (d *DebugSystem) drawPerf(w *ecs.World, screen *ebiten.Image) {
	propagating := ""
	if flow := w.Flowfield(); flow != nil && flow.Propagating() {
		propagating = " propagating"
	}
	msg := fmt.Sprintf("tps %.1f fps %.1f chasers %d%s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		ecs.Count(w, component.ChaserComponent.Kind()),
		propagating)
	ebitenutil.DebugPrint(screen, msg)
}
