package nav

import (
	"math"
	"testing"
)

func TestDiagonalBlocked(t *testing.T) {
	tests := []struct {
		name     string
		wallMask uint8
		dirMask  uint8
		want     bool
	}{
		{"NE blocked by north wall", MaskN, MaskNE, true},
		{"NE blocked by east wall", MaskE, MaskNE, true},
		{"NE open past south wall", MaskS, MaskNE, false},
		{"NE open past west wall", MaskW, MaskNE, false},
		{"SE blocked by south wall", MaskS, MaskSE, true},
		{"SE blocked by east wall", MaskE, MaskSE, true},
		{"SE open past north wall", MaskN, MaskSE, false},
		{"SW blocked by south wall", MaskS, MaskSW, true},
		{"SW blocked by west wall", MaskW, MaskSW, true},
		{"SW open past east wall", MaskE, MaskSW, false},
		{"NW blocked by north wall", MaskN, MaskNW, true},
		{"NW blocked by west wall", MaskW, MaskNW, true},
		{"NW open past south wall", MaskS, MaskNW, false},
		{"NE blocked by both cardinals", MaskN | MaskE, MaskNE, true},
		{"no walls", 0, MaskNE, false},
		{"cardinal dir never blocked", MaskN | MaskE | MaskS | MaskW, MaskE, false},
		{"diagonal wall bits ignored", MaskNE | MaskSW, MaskSE, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diagonalBlocked(tt.wallMask, tt.dirMask); got != tt.want {
				t.Errorf("diagonalBlocked(%08b, %08b) = %t, want %t", tt.wallMask, tt.dirMask, got, tt.want)
			}
		})
	}
}

func TestNeighborsCardinalsFirst(t *testing.T) {
	for i, nb := range neighbors {
		wantCost := stepCostCardinal
		if i >= 4 {
			wantCost = stepCostDiagonal
		}
		if nb.cost != wantCost {
			t.Errorf("neighbors[%d] cost = %d, want %d", i, nb.cost, wantCost)
		}
		if got := math.Hypot(nb.dir.X, nb.dir.Y); math.Abs(got-1) > 1e-12 {
			t.Errorf("neighbors[%d] dir length = %v, want 1", i, got)
		}
	}
}

func TestDirFrom(t *testing.T) {
	if d := dirFrom(0, 0); d.Valid() {
		t.Errorf("dirFrom(0, 0) = %+v, want unset", d)
	}
	d := dirFrom(3, -4)
	if math.Abs(d.X-0.6) > 1e-12 || math.Abs(d.Y+0.8) > 1e-12 {
		t.Errorf("dirFrom(3, -4) = %+v, want (0.6, -0.8)", d)
	}
}

func TestDirAngle(t *testing.T) {
	tests := []struct {
		name string
		dir  Dir
		want float64
	}{
		{"east", DirEast, 0},
		{"south", DirSouth, math.Pi / 2},
		{"west", DirWest, math.Pi},
		{"north", DirNorth, 3 * math.Pi / 2},
		{"south east", DirSouthEast, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Angle(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAmbiguousAngle(t *testing.T) {
	for _, d := range []Dir{DirNorth, DirEast, DirSouth, DirWest, DirNorthEast, DirSouthEast, DirSouthWest, DirNorthWest} {
		if !ambiguousAngle(d) {
			t.Errorf("ambiguousAngle(%+v) = false, want true", d)
		}
	}
	if ambiguousAngle(dirFrom(2.5, 2)) {
		t.Error("ambiguousAngle of off-axis direction = true, want false")
	}
}
