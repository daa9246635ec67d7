package level

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws a level's layers as flat-colored tiles, with shaped images
// for half walls and corner triangles. Images are built once per layer.
type Renderer struct {
	level  *Level
	layers []map[string]*ebiten.Image
}

func NewRenderer(l *Level) *Renderer {
	r := &Renderer{level: l}
	size := int(l.TileSize)
	for _, layer := range l.Layers {
		col := parseHexColor(layer.Color)
		imgs := map[string]*ebiten.Image{
			shapeWall:     fillImage(size, col),
			shapeHalfN:    shapedImage(size, col, shapeHalfN),
			shapeHalfE:    shapedImage(size, col, shapeHalfE),
			shapeHalfS:    shapedImage(size, col, shapeHalfS),
			shapeHalfW:    shapedImage(size, col, shapeHalfW),
			shapeCornerNE: shapedImage(size, col, shapeCornerNE),
			shapeCornerSE: shapedImage(size, col, shapeCornerSE),
			shapeCornerSW: shapedImage(size, col, shapeCornerSW),
			shapeCornerNW: shapedImage(size, col, shapeCornerNW),
		}
		r.layers = append(r.layers, imgs)
	}
	return r
}

// Draw renders all layers in order. camX/camY are the camera view's
// top-left in world coordinates.
func (r *Renderer) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if r == nil || r.level == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	l := r.level
	ts := l.TileSize

	for li, layer := range l.Layers {
		imgs := r.layers[li]
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				id := layer.Tiles[y*l.Width+x]
				shape, ok := l.shapes[id]
				if !ok || shape == shapeOpen {
					continue
				}
				img := imgs[shape]
				if img == nil {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(zoom, zoom)
				op.GeoM.Translate((float64(x)*ts-camX)*zoom, (float64(y)*ts-camY)*zoom)
				screen.DrawImage(img, op)
			}
		}
	}
}

func fillImage(size int, col color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(col)
	return img
}

// shapedImage builds the tile image for a half wall or corner triangle by
// filling the covered region pixel by pixel.
func shapedImage(size int, col color.RGBA, shape string) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			inside := false
			switch shape {
			case shapeHalfN:
				inside = y < half
			case shapeHalfS:
				inside = y >= half
			case shapeHalfW:
				inside = x < half
			case shapeHalfE:
				inside = x >= half
			case shapeCornerNE:
				inside = x >= y
			case shapeCornerSW:
				inside = x <= y
			case shapeCornerNW:
				inside = x+y < size
			case shapeCornerSE:
				inside = x+y >= size
			}
			if inside {
				rgba.Set(x, y, col)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

// parseHexColor parses a color in the form #rrggbb. Returns a fallback
// color if the string does not parse.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x3c, 0x3c, 0x46
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
