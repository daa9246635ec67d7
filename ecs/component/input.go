package component

// Input is the per-frame input snapshot. A single entity carries it;
// systems read it instead of polling devices themselves.
type Input struct {
	MoveX, MoveY float64
	Boost        bool
	Reset        bool
	Pause        bool
	Noclip       bool
}

var InputComponent = NewComponent[Input]()
