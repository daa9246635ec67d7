package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
)

// SeparationSystem nudges overlapping chasers apart so a pack spreads
// into a crowd instead of stacking on one point. Pairs are bucketed
// into a coarse grid first; with thousands of chasers the naive
// pairwise pass is far too slow.
type SeparationSystem struct {
	Radius   float64
	Strength float64
}

func NewSeparationSystem() *SeparationSystem {
	return &SeparationSystem{
		Radius:   10.0,
		Strength: 30.0,
	}
}

func (s *SeparationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	type chaserInfo struct {
		body *cp.Body
	}

	cellSize := s.Radius
	grid := make(map[[2]int][]chaserInfo)

	ecs.ForEach2(w, component.ChaserComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.Chaser, body *component.PhysicsBody) {
		if body == nil || body.Body == nil {
			return
		}
		pos := body.Body.Position()
		cell := [2]int{int(math.Floor(pos.X / cellSize)), int(math.Floor(pos.Y / cellSize))}
		grid[cell] = append(grid[cell], chaserInfo{body: body.Body})
	})

	repel := func(a, b *cp.Body) {
		dx := a.Position().X - b.Position().X
		dy := a.Position().Y - b.Position().Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dx = (rand.Float64() - 0.5) * 1e-3
			dy = (rand.Float64() - 0.5) * 1e-3
			dist = math.Hypot(dx, dy)
		}
		if dist >= s.Radius {
			return
		}

		nx := dx / dist
		ny := dy / dist
		mag := s.Strength * ((s.Radius - dist) / s.Radius)

		ix := nx * mag * 0.5
		iy := ny * mag * 0.5
		a.ApplyImpulseAtWorldPoint(cp.Vector{X: ix, Y: iy}, a.Position())
		b.ApplyImpulseAtWorldPoint(cp.Vector{X: -ix, Y: -iy}, b.Position())
	}

	for cell, bucket := range grid {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				repel(bucket[i].body, bucket[j].body)
			}
			// Forward neighbor cells only, so each pair runs once.
			for _, offset := range [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
				neighbor := [2]int{cell[0] + offset[0], cell[1] + offset[1]}
				for _, other := range grid[neighbor] {
					repel(bucket[i].body, other.body)
				}
			}
		}
	}
}
