package component

// Transform is the entity's world position and facing angle in radians.
type Transform struct {
	X, Y  float64
	Angle float64
}

var TransformComponent = NewComponent[Transform]()
