package geom

import "math"

// Precision is the quantization step for point equality. Points closer
// together than this on both axes compare equal and produce the same key.
const Precision = 0.01

const precisionMul = 1.0 / Precision

// Point is a 2D point with quantized identity.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Key quantizes the point so that nearly-coincident points collapse to the
// same map key.
type Key struct {
	X int64
	Y int64
}

func (p Point) Key() Key {
	// Truncation toward zero, so every point inside one precision step of the
	// origin-aligned grid collapses to the same key.
	return Key{
		X: int64(p.X * precisionMul),
		Y: int64(p.Y * precisionMul),
	}
}

// Equal reports whether p and q quantize to the same point.
func (p Point) Equal(q Point) bool {
	return p.Key() == q.Key()
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// ClampAxes clamps each axis independently to [-max, +max].
func (p Point) ClampAxes(max float64) Point {
	return Point{
		X: math.Min(math.Max(p.X, -max), max),
		Y: math.Min(math.Max(p.Y, -max), max),
	}
}

// Cross returns the 2D cross product p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}
