package nav

import (
	"fmt"
	"math"
	"sort"

	"github.com/milk9111/chase/geom"
)

// Outline is one traced wall boundary: a closed polyline with the first
// vertex repeated at the end, plus index pairs naming which consecutive
// vertices form a solid collider segment. A beveled convex corner leaves an
// intentional gap between its two vertices, so nothing snags on the exact
// corner point; the pairs let the physics layer build the polyline without
// bridging those gaps.
type Outline struct {
	Vertices []geom.Point
	Rigid    [][2]int
}

// Tracer accumulates the boundary edges of solid tile shapes and joins
// them into closed outlines. Edges shared by two adjacent shapes cancel on
// insertion, so only the outer (and inner hole) boundary of a wall mass
// survives to the walk.
type Tracer struct {
	segs   map[geom.SegmentKey]geom.Segment
	starts map[geom.Key][]geom.Segment
}

func NewTracer() *Tracer {
	return &Tracer{
		segs:   make(map[geom.SegmentKey]geom.Segment),
		starts: make(map[geom.Key][]geom.Segment),
	}
}

// AddRect registers an axis-aligned rectangle centered on center.
func (t *Tracer) AddRect(center geom.Point, w, h float64) {
	hx := w * 0.5
	hy := h * 0.5
	p := [4]geom.Point{
		{X: center.X - hx, Y: center.Y - hy},
		{X: center.X - hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y - hy},
	}
	for i := range p {
		t.add(geom.Seg(p[i], p[(i+1)%4]))
	}
}

// AddPolygon registers an arbitrary closed polygon. Winding is normalized
// so all registered shapes agree, letting shared edges cancel regardless of
// how the source data ordered its points.
func (t *Tracer) AddPolygon(points []geom.Point) {
	if len(points) < 3 {
		return
	}
	if shoelace(points) < 0 {
		reversed := make([]geom.Point, len(points))
		for i, p := range points {
			reversed[len(points)-1-i] = p
		}
		points = reversed
	}
	for i := range points {
		t.add(geom.Seg(points[i], points[(i+1)%len(points)]))
	}
}

// shoelace is the signed-area sum in screen coordinates (y down); the
// canonical winding used here makes it positive.
func shoelace(points []geom.Point) float64 {
	var sum float64
	for i, p1 := range points {
		p2 := points[(i+1)%len(points)]
		sum += (p2.X - p1.X) * (p2.Y + p1.Y)
	}
	return sum
}

// add inserts one directed boundary edge, or cancels it against the
// already-registered reverse edge of an adjacent shape.
func (t *Tracer) add(s geom.Segment) {
	key := s.Key()
	if twin, ok := t.segs[key]; ok {
		delete(t.segs, key)
		t.removeStart(twin)
		return
	}
	t.segs[key] = s
	t.starts[s.A.Key()] = append(t.starts[s.A.Key()], s)
}

func (t *Tracer) removeStart(s geom.Segment) {
	k := s.A.Key()
	bucket := t.starts[k]
	for i, cand := range bucket {
		if cand.Key() == s.Key() {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(t.starts, k)
	} else {
		t.starts[k] = bucket
	}
}

// Outlines walks the surviving edges into closed loops, merges collinear
// runs, and bevels convex corners by pulling each back along its adjacent
// edges by at most maxBevel per axis. The registry is consumed; the tracer
// is spent afterwards.
func (t *Tracer) Outlines(maxBevel float64) ([]Outline, error) {
	keys := make([]geom.SegmentKey, 0, len(t.segs))
	for k := range t.segs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.P1 != b.P1 {
			if a.P1.X != b.P1.X {
				return a.P1.X < b.P1.X
			}
			return a.P1.Y < b.P1.Y
		}
		if a.P2.X != b.P2.X {
			return a.P2.X < b.P2.X
		}
		return a.P2.Y < b.P2.Y
	})

	var outlines []Outline
	for _, k := range keys {
		start, ok := t.segs[k]
		if !ok {
			continue // consumed by an earlier loop
		}
		verts, err := t.walk(start)
		if err != nil {
			return nil, err
		}
		vertices, rigid := bevel(verts, maxBevel)
		outlines = append(outlines, Outline{Vertices: vertices, Rigid: rigid})
	}
	return outlines, nil
}

// walk consumes one closed chain starting from s. At a junction it takes
// the candidate making the smallest positive turn from the incoming edge's
// reverse, which hugs the boundary consistently at T and X crossings.
// Collinear steps are merged as it goes: a vertex is only recorded when the
// quantized slope changes.
func (t *Tracer) walk(s geom.Segment) ([]geom.Point, error) {
	t.consume(s)

	verts := []geom.Point{s.A}
	seen := map[geom.Key]bool{s.A.Key(): true}
	firstSlope := s.SlopeKey()
	slope := firstSlope

	for {
		bucket := t.starts[s.B.Key()]
		if len(bucket) == 0 {
			return nil, fmt.Errorf("nav: dangling boundary at (%v, %v)", s.B.X, s.B.Y)
		}

		best := 0
		if len(bucket) > 1 {
			minAngle := math.MaxFloat64
			for i, cand := range bucket {
				a := s.AngleBetween(cand.Reverse())
				if a < 0 {
					a += 2 * math.Pi
				}
				if a < minAngle {
					minAngle = a
					best = i
				}
			}
		}

		next := bucket[best]
		t.consume(next)

		if sk := next.SlopeKey(); sk != slope {
			slope = sk
			verts = append(verts, next.A)
			seen[next.A.Key()] = true
		}
		s = next

		if seen[s.B.Key()] && len(t.starts[s.B.Key()]) == 0 {
			if firstSlope == slope {
				// The loop closed mid-run: the start vertex splits a
				// straight edge and carries no corner.
				verts[0] = verts[len(verts)-1]
				verts = verts[:len(verts)-1]
			}
			return verts, nil
		}
	}
}

func (t *Tracer) consume(s geom.Segment) {
	delete(t.segs, s.Key())
	t.removeStart(s)
}

// bevel classifies each corner by the signed turn between its edges. In
// screen coordinates a negative turn is a convex (outward) corner: it is
// replaced by two vertices pulled back along the adjacent edges, and the
// span between them is left out of the rigid pairs. Concave corners keep
// their single vertex. The returned polyline repeats the first vertex at
// the end, and every rigid pair indexes into it.
func bevel(verts []geom.Point, maxBevel float64) ([]geom.Point, [][2]int) {
	n := len(verts)
	out := make([]geom.Point, 0, 2*n+1)
	rigid := make([][2]int, 0, n)

	idx := 0
	s1 := geom.Seg(verts[0], verts[1%n])
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]
		s2 := geom.Seg(b, c)
		angle := s1.AngleBetween(s2)
		s1 = s2

		if angle < 0 {
			d1 := b.Sub(a).ClampAxes(maxBevel)
			d2 := c.Sub(b).ClampAxes(maxBevel)
			idx += 2
			out = append(out, b.Sub(d1), b.Add(d2))
			rigid = append(rigid, [2]int{idx - 1, idx})
		} else {
			idx++
			out = append(out, b)
			rigid = append(rigid, [2]int{idx - 1, idx})
		}
	}

	out = append(out, out[0])
	return out, rigid
}
