package geom

import "math"

// Segment is a 2D line segment from A to B. Its identity is undirected: a
// segment equals its own reversal and both produce the same key.
type Segment struct {
	A Point
	B Point
}

func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Vec returns the vector from A to B.
func (s Segment) Vec() Point {
	return Point{X: s.B.X - s.A.X, Y: s.B.Y - s.A.Y}
}

func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// AngleBetween returns the signed angle (radians, in [-π, +π]) from s to
// other, both treated as vectors anchored at the origin. Segments must have
// non-zero length.
func (s Segment) AngleBetween(other Segment) float64 {
	v1 := s.Vec()
	v2 := other.Vec()
	return math.Atan2(v1.Cross(v2), v1.Dot(v2))
}

// SlopeKey quantizes rise-over-run so nearly-equal slopes compare equal.
// Vertical segments map to the +/-Inf conversion limits, which still compare
// equal among themselves.
func (s Segment) SlopeKey() int64 {
	v := s.Vec()
	slope := v.Y / v.X
	if math.IsNaN(slope) {
		return 0
	}
	if slope > math.MaxInt64/2 || math.IsInf(slope, 1) {
		return math.MaxInt64
	}
	if slope < math.MinInt64/2 || math.IsInf(slope, -1) {
		return math.MinInt64
	}
	return int64(slope * precisionMul)
}

// SegmentKey is the undirected map key for a segment: endpoint keys in
// canonical order, so (A→B) and (B→A) collide.
type SegmentKey struct {
	P1 Key
	P2 Key
}

func (s Segment) Key() SegmentKey {
	p1 := s.A.Key()
	p2 := s.B.Key()
	if p1.X > p2.X || (p1.X == p2.X && p1.Y > p2.Y) {
		p1, p2 = p2, p1
	}
	return SegmentKey{P1: p1, P2: p2}
}

// Equal reports whether the two segments cover the same quantized endpoints,
// in either direction.
func (s Segment) Equal(other Segment) bool {
	return s.Key() == other.Key()
}
