package ecs

import (
	"math"
	"testing"

	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/nav"
)

func TestAddWallsSegmentsQueryable(t *testing.T) {
	pw := NewPhysicsWorld()
	outline := nav.Outline{
		Vertices: []geom.Point{geom.Pt(0, 0), geom.Pt(16, 0), geom.Pt(16, 16), geom.Pt(0, 16), geom.Pt(0, 0)},
		Rigid:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
	}
	pw.AddWalls([]nav.Outline{outline})

	point, dist, ok := pw.NearestWall(geom.Pt(8, -4), 10)
	if !ok {
		t.Fatal("expected a wall within range")
	}
	if math.Abs(dist-3.5) > 1e-9 {
		t.Errorf("distance = %v, want 3.5 (4 minus the segment radius)", dist)
	}
	if math.Abs(point.X-8) > 1e-9 || math.Abs(point.Y+0.5) > 1e-9 {
		t.Errorf("nearest point = %+v, want (8, -0.5)", point)
	}

	if _, _, ok := pw.NearestWall(geom.Pt(8, -100), 10); ok {
		t.Error("expected no wall in range far from the outline")
	}
}

func TestAddWallsSkipsBevelDiagonals(t *testing.T) {
	// Only the rigid pairs become colliders; the beveled corner edge
	// between vertex 1 and 2 stays open.
	pw := NewPhysicsWorld()
	outline := nav.Outline{
		Vertices: []geom.Point{geom.Pt(0, 0), geom.Pt(14, 0), geom.Pt(16, 2), geom.Pt(16, 16)},
		Rigid:    [][2]int{{0, 1}, {2, 3}},
	}
	pw.AddWalls([]nav.Outline{outline})

	// (16, 0) is ~1.41 from the bevel diagonal but 2 from each rigid
	// segment; a collidable bevel would report the shorter distance.
	_, dist, ok := pw.NearestWall(geom.Pt(16, 0), 10)
	if !ok {
		t.Fatal("expected the rigid segments in range")
	}
	if math.Abs(dist-1.5) > 1e-9 {
		t.Errorf("distance = %v, want 1.5 (2 minus the segment radius)", dist)
	}
}
