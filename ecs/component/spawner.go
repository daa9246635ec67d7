package component

// Spawner emits chasers on a timer once activated. The Default fields
// remember the level's initial state so a reset can restore it.
type Spawner struct {
	ID        int
	X, Y      float64
	NumSpawn  int
	Delay     float64
	Interval  float64
	Immediate bool
	Repeats   bool

	DefaultActive bool

	Active bool
	Count  int
	Timer  float64
}

var SpawnerComponent = NewComponent[Spawner]()
