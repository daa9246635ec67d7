package component

// Camera is the view transform applied when drawing the world.
type Camera struct {
	X, Y float64
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
