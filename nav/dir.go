package nav

import "math"

// Subtile bitmask layout: the low nibble holds the four cardinal edges, the
// high nibble the four diagonal corners. A set bit means movement out of the
// cell in that direction is blocked.
const (
	MaskN uint8 = 0b0000_1000
	MaskE uint8 = 0b0000_0100
	MaskS uint8 = 0b0000_0010
	MaskW uint8 = 0b0000_0001

	MaskNE uint8 = 0b1100_0000
	MaskSE uint8 = 0b0110_0000
	MaskSW uint8 = 0b0011_0000
	MaskNW uint8 = 0b1001_0000
)

// Full subtile masks per wall shape: a half wall blocks the three outgoing
// directions facing the solid side, a corner triangle blocks its corner and
// the two cardinals bounding it.
const (
	MaskWall uint8 = math.MaxUint8

	MaskSubtileN uint8 = MaskN | MaskNE | MaskNW
	MaskSubtileE uint8 = MaskE | MaskNE | MaskSE
	MaskSubtileS uint8 = MaskS | MaskSE | MaskSW
	MaskSubtileW uint8 = MaskW | MaskSW | MaskNW

	MaskSubtileNE uint8 = MaskNE | MaskN | MaskE
	MaskSubtileSE uint8 = MaskSE | MaskS | MaskE
	MaskSubtileSW uint8 = MaskSW | MaskS | MaskW
	MaskSubtileNW uint8 = MaskNW | MaskN | MaskW
)

// Dir is a unit direction. The zero value is the unset sentinel.
// World space is screen space: +X east, +Y south.
type Dir struct {
	X float64
	Y float64
}

var (
	DirNorth     = Dir{0, -1}
	DirEast      = Dir{1, 0}
	DirSouth     = Dir{0, 1}
	DirWest      = Dir{-1, 0}
	DirNorthEast = Dir{invSqrt2, -invSqrt2}
	DirSouthEast = Dir{invSqrt2, invSqrt2}
	DirSouthWest = Dir{-invSqrt2, invSqrt2}
	DirNorthWest = Dir{-invSqrt2, -invSqrt2}
)

const invSqrt2 = math.Sqrt2 / 2

// Valid reports whether the direction is set. Unit directions can never be
// the zero vector.
func (d Dir) Valid() bool {
	return d.X != 0 || d.Y != 0
}

// Angle returns the direction's angle in radians, in [0, 2π).
func (d Dir) Angle() float64 {
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// dirFrom normalizes (x, y) into a Dir. Zero-length input returns the unset
// sentinel instead of a NaN direction.
func dirFrom(x, y float64) Dir {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) {
		return Dir{}
	}
	return Dir{X: x / l, Y: y / l}
}

// neighbor describes one of the 8 expansion directions: tile delta, step
// cost, edge bitmask and the unit direction toward it.
type neighbor struct {
	dx   int
	dy   int
	cost uint32
	mask uint8
	dir  Dir
}

// Cardinals first: cost expansion accumulates the cardinal wall mask before
// any diagonal is considered, which diagonalBlocked depends on.
var neighbors = [8]neighbor{
	{0, -1, stepCostCardinal, MaskN, DirNorth},
	{1, 0, stepCostCardinal, MaskE, DirEast},
	{0, 1, stepCostCardinal, MaskS, DirSouth},
	{-1, 0, stepCostCardinal, MaskW, DirWest},
	{1, -1, stepCostDiagonal, MaskNE, DirNorthEast},
	{1, 1, stepCostDiagonal, MaskSE, DirSouthEast},
	{-1, 1, stepCostDiagonal, MaskSW, DirSouthWest},
	{-1, -1, stepCostDiagonal, MaskNW, DirNorthWest},
}

const (
	stepCostCardinal uint32 = 10
	stepCostDiagonal uint32 = 14
)

// diagonalBlocked reports whether moving along the diagonal identified by
// dirMask is forbidden by the walls recorded in wallMask. Shifting the
// cardinal nibble up aligns each cardinal with the two diagonals it bounds:
// a diagonal is blocked when either adjacent cardinal neighbor is a wall, so
// agents cannot cut across a wall corner.
func diagonalBlocked(wallMask, dirMask uint8) bool {
	if dirMask&0b1111_0000 == 0 {
		return false
	}
	return (wallMask<<4)&dirMask != 0
}

// ambiguousAngle reports whether a memoized direction sits on one of the
// reference angles (cardinal or exact diagonal) that flow derivation treats
// as worth re-deriving. This is a recompute heuristic, not a correctness
// invariant; see referenceAngleEpsilon.
func ambiguousAngle(d Dir) bool {
	ax := math.Abs(d.X)
	for _, ref := range [3]float64{0, 1, invSqrt2} {
		if math.Abs(ax-ref) < referenceAngleEpsilon {
			return true
		}
	}
	return false
}

const referenceAngleEpsilon = 1e-9
