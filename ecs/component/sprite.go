package component

import "image/color"

// Sprite draws the entity as a filled circle with a facing notch.
type Sprite struct {
	Radius float64
	Color  color.RGBA
}

var SpriteComponent = NewComponent[Sprite]()
