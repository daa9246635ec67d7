package component

// Trigger mirrors a level trigger volume for the debug object overlay.
// The collision sensor itself lives in the physics world.
type Trigger struct {
	SpawnerID     int
	X, Y          float64
	Width, Height float64
	Ellipse       bool
}

var TriggerComponent = NewComponent[Trigger]()
