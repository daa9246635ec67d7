package geom

import (
	"math"
	"testing"
)

func TestSegmentUndirectedEquality(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, 4)

	s1 := Seg(a, b)
	s2 := Seg(b, a)

	if !s1.Equal(s2) {
		t.Fatal("a segment must equal its own reversal")
	}
	if s1.Key() != s2.Key() {
		t.Fatalf("reversed segments must share a key: %v vs %v", s1.Key(), s2.Key())
	}

	s3 := Seg(a, Pt(3, 4.5))
	if s1.Equal(s3) {
		t.Fatal("segments with different endpoints must not compare equal")
	}
}

func TestSegmentKeyTolerance(t *testing.T) {
	s1 := Seg(Pt(1.001, 2.003), Pt(3.004, 4.002))
	s2 := Seg(Pt(3.001, 4.006), Pt(1.006, 2.001))
	if s1.Key() != s2.Key() {
		t.Fatalf("nearly-coincident reversed segments must collide: %v vs %v", s1.Key(), s2.Key())
	}
}

func TestSegmentAngleBetween(t *testing.T) {
	cases := []struct {
		name string
		s1   Segment
		s2   Segment
		want float64
	}{
		{"parallel", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(0, 0), Pt(2, 0)), 0},
		{"quarter_turn", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(0, 0), Pt(0, 1)), math.Pi / 2},
		{"opposite", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(0, 0), Pt(-1, 0)), math.Pi},
		{"negative_quarter", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(0, 0), Pt(0, -1)), -math.Pi / 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.s1.AngleBetween(c.s2)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("AngleBetween = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSegmentSlopeKey(t *testing.T) {
	if Seg(Pt(0, 0), Pt(2, 1)).SlopeKey() != Seg(Pt(4, 4), Pt(8, 6.001)).SlopeKey() {
		t.Fatal("nearly-equal slopes must share a key")
	}
	if Seg(Pt(0, 0), Pt(1, 0)).SlopeKey() == Seg(Pt(0, 0), Pt(1, 1)).SlopeKey() {
		t.Fatal("distinct slopes must not share a key")
	}
	vert := Seg(Pt(1, 0), Pt(1, 5)).SlopeKey()
	if vert != Seg(Pt(2, 2), Pt(2, 9)).SlopeKey() {
		t.Fatal("vertical segments walked the same direction must share a key")
	}
}
