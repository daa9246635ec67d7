package nav

import (
	"math"
	"testing"

	"github.com/milk9111/chase/geom"
)

func approx(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestOutlinesSingleTile(t *testing.T) {
	tr := NewTracer()
	tr.AddRect(geom.Pt(8, 8), 16, 16)

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(outlines))
	}

	o := outlines[0]
	// Four convex corners bevel into two vertices each, plus the closing
	// duplicate of the first.
	if len(o.Vertices) != 9 {
		t.Fatalf("got %d vertices, want 9", len(o.Vertices))
	}
	if len(o.Rigid) != 4 {
		t.Fatalf("got %d rigid pairs, want 4", len(o.Rigid))
	}

	// Every bevel leaves a gap: the pairs alternate with the corner spans.
	want := [][2]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	for i, pair := range o.Rigid {
		if pair != want[i] {
			t.Errorf("rigid[%d] = %v, want %v", i, pair, want[i])
		}
	}

	// Each rigid pair must lie along one original edge of the square.
	for i, pair := range o.Rigid {
		a, b := o.Vertices[pair[0]], o.Vertices[pair[1]]
		if math.Abs(a.X-b.X) > 1e-9 && math.Abs(a.Y-b.Y) > 1e-9 {
			t.Errorf("rigid[%d] %v-%v is not axis aligned", i, a, b)
		}
	}

	wantVerts := []geom.Point{
		{X: 0, Y: 15.7}, {X: 0.3, Y: 16},
		{X: 15.7, Y: 16}, {X: 16, Y: 15.7},
		{X: 16, Y: 0.3}, {X: 15.7, Y: 0},
		{X: 0.3, Y: 0}, {X: 0, Y: 0.3},
		{X: 0, Y: 15.7},
	}
	for i, v := range o.Vertices {
		if !approx(v, wantVerts[i]) {
			t.Errorf("vertex[%d] = %v, want %v", i, v, wantVerts[i])
		}
	}
}

func TestOutlinesSharedEdgeCancels(t *testing.T) {
	tr := NewTracer()
	tr.AddRect(geom.Pt(8, 8), 16, 16)
	tr.AddRect(geom.Pt(24, 8), 16, 16)

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1 merged loop", len(outlines))
	}

	o := outlines[0]
	// The merged 32x16 block still has exactly four corners: the interior
	// edge at x=16 cancelled and the collinear top/bottom runs merged.
	if len(o.Vertices) != 9 || len(o.Rigid) != 4 {
		t.Fatalf("got %d vertices / %d rigid pairs, want 9 / 4", len(o.Vertices), len(o.Rigid))
	}
	for _, v := range o.Vertices {
		if math.Abs(v.X-16) < 1 {
			t.Errorf("vertex %v survives from the cancelled interior edge", v)
		}
	}
}

func TestOutlinesPolygonWindingNormalized(t *testing.T) {
	// The second tile arrives as a clockwise polygon; its shared edge must
	// still cancel against the rectangle's.
	tr := NewTracer()
	tr.AddRect(geom.Pt(8, 8), 16, 16)
	tr.AddPolygon([]geom.Point{
		{X: 16, Y: 0}, {X: 32, Y: 0}, {X: 32, Y: 16}, {X: 16, Y: 16},
	})

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1 merged loop", len(outlines))
	}
	if len(outlines[0].Rigid) != 4 {
		t.Errorf("got %d rigid pairs, want 4", len(outlines[0].Rigid))
	}
}

func TestOutlinesDonutHasInnerLoop(t *testing.T) {
	tr := NewTracer()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			tr.AddRect(geom.Pt(float64(x)*16+8, float64(y)*16+8), 16, 16)
		}
	}

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 2 {
		t.Fatalf("got %d outlines, want outer and inner", len(outlines))
	}

	outer, inner := outlines[0], outlines[1]
	if len(outer.Vertices) != 9 || len(outer.Rigid) != 4 {
		t.Errorf("outer loop: %d vertices / %d rigid pairs, want 9 / 4", len(outer.Vertices), len(outer.Rigid))
	}

	// The hole's corners are concave: no beveling, and the rigid pairs
	// chain without gaps.
	if len(inner.Vertices) != 5 || len(inner.Rigid) != 4 {
		t.Fatalf("inner loop: %d vertices / %d rigid pairs, want 5 / 4", len(inner.Vertices), len(inner.Rigid))
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	for i, pair := range inner.Rigid {
		if pair != want[i] {
			t.Errorf("inner rigid[%d] = %v, want %v", i, pair, want[i])
		}
	}
}

func TestOutlinesLShape(t *testing.T) {
	tr := NewTracer()
	tr.AddRect(geom.Pt(8, 8), 16, 16)
	tr.AddRect(geom.Pt(8, 24), 16, 16)
	tr.AddRect(geom.Pt(24, 24), 16, 16)

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(outlines))
	}

	o := outlines[0]
	// Five convex corners bevel, the single reflex corner at the inner
	// elbow stays one vertex: 5*2 + 1 + closing duplicate.
	if len(o.Vertices) != 12 {
		t.Errorf("got %d vertices, want 12", len(o.Vertices))
	}
	if len(o.Rigid) != 6 {
		t.Errorf("got %d rigid pairs, want 6", len(o.Rigid))
	}

	elbow := geom.Pt(16, 16)
	found := false
	for _, v := range o.Vertices {
		if approx(v, elbow) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("inner elbow %v was beveled away", elbow)
	}
}

func TestOutlinesTriangleTile(t *testing.T) {
	tr := NewTracer()
	tr.AddPolygon([]geom.Point{
		{X: 0, Y: 16}, {X: 16, Y: 16}, {X: 16, Y: 0},
	})

	outlines, err := tr.Outlines(0.3)
	if err != nil {
		t.Fatalf("Outlines: %v", err)
	}
	if len(outlines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(outlines))
	}
	if got := outlines[0]; len(got.Vertices) != 7 || len(got.Rigid) != 3 {
		t.Errorf("got %d vertices / %d rigid pairs, want 7 / 3", len(got.Vertices), len(got.Rigid))
	}
}

func TestOutlinesDanglingSegment(t *testing.T) {
	tr := NewTracer()
	tr.add(geom.Seg(geom.Pt(0, 0), geom.Pt(16, 0)))

	if _, err := tr.Outlines(0.3); err == nil {
		t.Fatal("Outlines on a dangling chain returned nil error")
	}
}
