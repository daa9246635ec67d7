package component

// PlayerTag marks the player entity.
type PlayerTag struct{}

// PlayerController holds movement tuning for the player body.
// MoveSpeed is the soft cap; Drag bleeds off speed above it so a boost
// release decays instead of snapping.
type PlayerController struct {
	MoveSpeed       float64
	BoostMultiplier float64
	Accel           float64
	Brake           float64
	Drag            float64
	SpawnX          float64
	SpawnY          float64
	Boosting        bool
	Noclip          bool
}

var (
	PlayerTagComponent        = NewComponent[PlayerTag]()
	PlayerControllerComponent = NewComponent[PlayerController]()
)
