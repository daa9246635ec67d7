package level

import (
	"strings"
	"testing"

	"github.com/milk9111/chase/nav"
)

const sampleJSON = `{
	"width": 3,
	"height": 2,
	"tileset": [
		{"id": 0, "shape": "open"},
		{"id": 1, "shape": "wall"},
		{"id": 2, "shape": "corner_ne"},
		{"id": 3, "shape": "half_s"}
	],
	"layers": [
		{"name": "walls", "collision": true, "color": "#4a4a55", "tiles": [1, 0, 2, 0, 3, 0]}
	],
	"objects": [
		{"name": "start", "type": "player_spawn", "x": 24, "y": 24},
		{"name": "pit", "type": "spawner", "x": 40, "y": 8, "props": {"spawner_id": 1, "num_spawn": 3, "repeats": true}},
		{"name": "pit_zone", "type": "trigger", "shape": "rect", "x": 32, "y": 0, "width": 16, "height": 32, "props": {"spawner_id": 1}}
	]
}`

func mustLoad(t *testing.T, src string) *Level {
	t.Helper()
	lvl, err := loadFromBytes([]byte(src))
	if err != nil {
		t.Fatalf("loadFromBytes: %v", err)
	}
	return lvl
}

func TestLoadDefaultsAndShapes(t *testing.T) {
	lvl := mustLoad(t, sampleJSON)

	if lvl.TileSize != 16 {
		t.Errorf("TileSize = %v, want default 16", lvl.TileSize)
	}
	if got := lvl.shapeAt(0, 0); got != shapeWall {
		t.Errorf("shapeAt(0, 0) = %q, want wall", got)
	}
	if got := lvl.shapeAt(1, 0); got != "" {
		t.Errorf("shapeAt(1, 0) = %q, want open", got)
	}
	if got := lvl.shapeAt(2, 0); got != shapeCornerNE {
		t.Errorf("shapeAt(2, 0) = %q, want corner_ne", got)
	}
	if got := lvl.shapeAt(1, 1); got != shapeHalfS {
		t.Errorf("shapeAt(1, 1) = %q, want half_s", got)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"zero dimensions",
			`{"width": 0, "height": 2, "layers": []}`,
			"invalid dimensions",
		},
		{
			"short layer",
			`{"width": 3, "height": 2, "layers": [{"name": "a", "tiles": [0, 0]}]}`,
			"has 2 tiles",
		},
		{
			"unknown tile shape",
			`{"width": 1, "height": 1, "tileset": [{"id": 1, "shape": "dome"}], "layers": [{"tiles": [1]}]}`,
			"unknown shape",
		},
		{
			"unknown object type",
			`{"width": 1, "height": 1, "layers": [{"tiles": [0]}], "objects": [{"type": "portal", "x": 0, "y": 0}]}`,
			"unknown type",
		},
		{
			"unsupported object shape",
			`{"width": 1, "height": 1, "layers": [{"tiles": [0]}], "objects": [{"type": "trigger", "shape": "point", "x": 0, "y": 0}]}`,
			"unsupported shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFromBytes([]byte(tt.src))
			if err == nil {
				t.Fatal("loadFromBytes returned nil error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestBuildNavMasksAndOutlines(t *testing.T) {
	lvl := mustLoad(t, sampleJSON)

	walls, outlines, err := lvl.BuildNav()
	if err != nil {
		t.Fatalf("BuildNav: %v", err)
	}

	wantMasks := []uint8{
		nav.MaskWall, 0, nav.MaskSubtileNE,
		0, nav.MaskSubtileS, 0,
	}
	for i, want := range wantMasks {
		if walls[i] != want {
			t.Errorf("walls[%d] = %08b, want %08b", i, walls[i], want)
		}
	}

	// Three disjoint solids: the full wall, the corner triangle, and the
	// half wall.
	if len(outlines) != 3 {
		t.Fatalf("got %d outlines, want 3", len(outlines))
	}
	for i, o := range outlines {
		if len(o.Vertices) < 5 {
			t.Errorf("outline %d has %d vertices", i, len(o.Vertices))
		}
		if len(o.Rigid) == 0 {
			t.Errorf("outline %d has no rigid pairs", i)
		}
	}
}

func TestCoordinateConversion(t *testing.T) {
	lvl := mustLoad(t, sampleJSON)

	tx, ty := lvl.WorldToTile(40, 24)
	if tx != 2.5 || ty != 1.5 {
		t.Errorf("WorldToTile(40, 24) = (%v, %v), want (2.5, 1.5)", tx, ty)
	}
	wx, wy := lvl.TileToWorld(2, 1)
	if wx != 40 || wy != 24 {
		t.Errorf("TileToWorld(2, 1) = (%v, %v), want (40, 24)", wx, wy)
	}
	cx, cy := lvl.Objects[2].Center()
	if cx != 40 || cy != 16 {
		t.Errorf("trigger center = (%v, %v), want (40, 16)", cx, cy)
	}
}

func TestPropsGetters(t *testing.T) {
	lvl := mustLoad(t, sampleJSON)
	props := lvl.Objects[1].Props

	id, err := props.Int("spawner_id")
	if err != nil || id != 1 {
		t.Errorf("Int(spawner_id) = (%d, %v), want (1, nil)", id, err)
	}
	repeats, err := props.Bool("repeats")
	if err != nil || !repeats {
		t.Errorf("Bool(repeats) = (%t, %v), want (true, nil)", repeats, err)
	}
	if _, err := props.Float("delay"); err == nil {
		t.Error("Float(delay) on missing key returned nil error")
	}
	if _, err := props.String("num_spawn"); err == nil {
		t.Error("String(num_spawn) on number returned nil error")
	}
	if got := props.FloatOr("delay", 2.5); got != 2.5 {
		t.Errorf("FloatOr(delay, 2.5) = %v", got)
	}
	if got := props.IntOr("num_spawn", 9); got != 3 {
		t.Errorf("IntOr(num_spawn, 9) = %d, want 3", got)
	}
}
