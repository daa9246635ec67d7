package level

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/chase/common"
)

// Object types placed on a level.
const (
	ObjectPlayerSpawn = "player_spawn"
	ObjectSpawner     = "spawner"
	ObjectTrigger     = "trigger"
)

// Object shapes. Anything else is a configuration error.
const (
	ShapeRect    = "rect"
	ShapeEllipse = "ellipse"
)

// Level is a tile map stored as JSON. Layers are flat row-major arrays of
// tile IDs; the tileset table maps IDs to wall-shape categories.
type Level struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize float64 `json:"tile_size,omitempty"`

	Tileset []TileDef `json:"tileset"`
	Layers  []Layer   `json:"layers"`
	Objects []Object  `json:"objects,omitempty"`

	shapes map[int]string
}

// TileDef maps one tile ID to its wall-shape category.
type TileDef struct {
	ID    int    `json:"id"`
	Shape string `json:"shape"`
}

// Layer is one flat tile array. Collision layers contribute wall geometry;
// the others are decoration.
type Layer struct {
	Name      string `json:"name"`
	Collision bool   `json:"collision"`
	Color     string `json:"color,omitempty"`
	Tiles     []int  `json:"tiles"`
}

// Object is a placement from the level's object list: the player spawn,
// spawners and their triggers. Position is the top-left corner in world
// coordinates.
type Object struct {
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type"`
	Shape  string  `json:"shape,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Props  Props   `json:"props,omitempty"`
}

// Center returns the object's center in world coordinates.
func (o Object) Center() (float64, float64) {
	return o.X + o.Width*0.5, o.Y + o.Height*0.5
}

// Load reads a level from a JSON file at path.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadFromBytes(b)
}

// LoadFromFS reads a level JSON from an fs.FS (e.g. embedded levels).
func LoadFromFS(fsys fs.FS, name string) (*Level, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", name, err)
	}
	return loadFromBytes(b)
}

func loadFromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level: invalid dimensions: %dx%d", l.Width, l.Height)
	}
	if l.TileSize == 0 {
		l.TileSize = common.TileSize
	}
	if l.TileSize < 0 {
		return fmt.Errorf("level: invalid tile size: %v", l.TileSize)
	}

	l.shapes = make(map[int]string, len(l.Tileset))
	for _, def := range l.Tileset {
		if !knownShape(def.Shape) {
			return fmt.Errorf("level: tile %d has unknown shape %q", def.ID, def.Shape)
		}
		l.shapes[def.ID] = def.Shape
	}

	for i, layer := range l.Layers {
		if len(layer.Tiles) != l.Width*l.Height {
			return fmt.Errorf("level: layer %d (%s) has %d tiles, want %d", i, layer.Name, len(layer.Tiles), l.Width*l.Height)
		}
	}

	for i, o := range l.Objects {
		switch o.Type {
		case ObjectPlayerSpawn, ObjectSpawner, ObjectTrigger:
		default:
			return fmt.Errorf("level: object %d has unknown type %q", i, o.Type)
		}
		switch o.Shape {
		case "", ShapeRect, ShapeEllipse:
		default:
			return fmt.Errorf("level: object %d has unsupported shape %q", i, o.Shape)
		}
	}
	return nil
}

// WorldToTile converts world coordinates to fractional tile coordinates.
func (l *Level) WorldToTile(x, y float64) (float64, float64) {
	return x / l.TileSize, y / l.TileSize
}

// TileToWorld returns the world-space center of a tile.
func (l *Level) TileToWorld(tx, ty int) (float64, float64) {
	return (float64(tx) + 0.5) * l.TileSize, (float64(ty) + 0.5) * l.TileSize
}

// PixelWidth is the level's world width.
func (l *Level) PixelWidth() float64 { return float64(l.Width) * l.TileSize }

// PixelHeight is the level's world height.
func (l *Level) PixelHeight() float64 { return float64(l.Height) * l.TileSize }

// shapeAt resolves the wall-shape category of a cell across all collision
// layers; the topmost non-open shape wins.
func (l *Level) shapeAt(x, y int) string {
	shape := ""
	for _, layer := range l.Layers {
		if !layer.Collision {
			continue
		}
		id := layer.Tiles[y*l.Width+x]
		if s, ok := l.shapes[id]; ok && s != shapeOpen {
			shape = s
		}
	}
	return shape
}
