package component

// Chaser follows the flowfield toward the player. SpawnedAt orders
// chasers for the oldest-first population cap.
type Chaser struct {
	SpawnerID int
	SpawnedAt uint64
	MaxForce  float64
	Facing    float64
}

var ChaserComponent = NewComponent[Chaser]()
