package level

import (
	"fmt"

	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/nav"
)

// Wall-shape categories used in the tileset table. Half walls fill one side
// of the tile, corner triangles fill one corner with a diagonal hypotenuse.
const (
	shapeOpen = "open"
	shapeWall = "wall"

	shapeHalfN = "half_n"
	shapeHalfE = "half_e"
	shapeHalfS = "half_s"
	shapeHalfW = "half_w"

	shapeCornerNE = "corner_ne"
	shapeCornerSE = "corner_se"
	shapeCornerSW = "corner_sw"
	shapeCornerNW = "corner_nw"
)

func knownShape(s string) bool {
	switch s {
	case shapeOpen, shapeWall,
		shapeHalfN, shapeHalfE, shapeHalfS, shapeHalfW,
		shapeCornerNE, shapeCornerSE, shapeCornerSW, shapeCornerNW:
		return true
	}
	return false
}

var shapeMasks = map[string]uint8{
	shapeWall:     nav.MaskWall,
	shapeHalfN:    nav.MaskSubtileN,
	shapeHalfE:    nav.MaskSubtileE,
	shapeHalfS:    nav.MaskSubtileS,
	shapeHalfW:    nav.MaskSubtileW,
	shapeCornerNE: nav.MaskSubtileNE,
	shapeCornerSE: nav.MaskSubtileSE,
	shapeCornerSW: nav.MaskSubtileSW,
	shapeCornerNW: nav.MaskSubtileNW,
}

// Bevel pull-back per axis, in world units.
const maxBevelOffset = 0.3

// BuildNav derives the navigation data from the level's collision layers:
// the per-tile subtile bitmask grid and the traced wall outlines for the
// physics layer. Runs once at load time.
func (l *Level) BuildNav() ([]uint8, []nav.Outline, error) {
	walls := make([]uint8, l.Width*l.Height)
	tracer := nav.NewTracer()
	ts := l.TileSize

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			shape := l.shapeAt(x, y)
			if shape == "" {
				continue
			}
			walls[y*l.Width+x] |= shapeMasks[shape]

			ox := float64(x) * ts
			oy := float64(y) * ts
			switch shape {
			case shapeWall:
				tracer.AddRect(geom.Pt(ox+ts*0.5, oy+ts*0.5), ts, ts)
			case shapeHalfN:
				tracer.AddRect(geom.Pt(ox+ts*0.5, oy+ts*0.25), ts, ts*0.5)
			case shapeHalfS:
				tracer.AddRect(geom.Pt(ox+ts*0.5, oy+ts*0.75), ts, ts*0.5)
			case shapeHalfW:
				tracer.AddRect(geom.Pt(ox+ts*0.25, oy+ts*0.5), ts*0.5, ts)
			case shapeHalfE:
				tracer.AddRect(geom.Pt(ox+ts*0.75, oy+ts*0.5), ts*0.5, ts)
			case shapeCornerNE:
				tracer.AddPolygon([]geom.Point{
					{X: ox, Y: oy}, {X: ox + ts, Y: oy}, {X: ox + ts, Y: oy + ts},
				})
			case shapeCornerSE:
				tracer.AddPolygon([]geom.Point{
					{X: ox + ts, Y: oy}, {X: ox + ts, Y: oy + ts}, {X: ox, Y: oy + ts},
				})
			case shapeCornerSW:
				tracer.AddPolygon([]geom.Point{
					{X: ox, Y: oy}, {X: ox + ts, Y: oy + ts}, {X: ox, Y: oy + ts},
				})
			case shapeCornerNW:
				tracer.AddPolygon([]geom.Point{
					{X: ox, Y: oy}, {X: ox + ts, Y: oy}, {X: ox, Y: oy + ts},
				})
			}
		}
	}

	outlines, err := tracer.Outlines(maxBevelOffset)
	if err != nil {
		return nil, nil, fmt.Errorf("level: trace walls: %w", err)
	}
	return walls, outlines, nil
}
