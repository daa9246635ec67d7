package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/ecs/entity"
	"github.com/milk9111/chase/prefabs"
)

// SpawnSystem runs the spawner timers: triggers arm spawners, armed
// spawners emit chasers on their interval, and the population cap
// recycles the oldest chaser when a new one would exceed it.
type SpawnSystem struct {
	chaserSpec *prefabs.ChaserSpec
	script     *spawnScriptRuntime
}

func NewSpawnSystem(spec *prefabs.ChaserSpec) *SpawnSystem {
	s := &SpawnSystem{}
	s.SetChaserSpec(spec)
	return s
}

// SetChaserSpec swaps the spec future chasers spawn from and recompiles
// its on_spawn script. Used by prefab hot reload.
func (s *SpawnSystem) SetChaserSpec(spec *prefabs.ChaserSpec) {
	s.chaserSpec = spec
	s.script = nil
	if spec != nil && spec.SpawnScript != "" {
		rt, err := newSpawnScriptRuntime(spec.SpawnScript)
		if err != nil {
			log.Printf("spawn: load script %s: %v", spec.SpawnScript, err)
		} else {
			s.script = rt
		}
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.chaserSpec == nil {
		return
	}

	fired := make(map[int]bool)
	reset := false

	if pw := w.PhysicsWorld(); pw != nil {
		for _, id := range pw.DrainTriggers() {
			fired[id] = true
		}
	}
	for _, event := range w.Events().Drain() {
		switch e := event.(type) {
		case ecs.TriggerFired:
			fired[e.SpawnerID] = true
		case ecs.ResetRequested:
			reset = true
		}
	}

	if reset {
		s.resetLevel(w)
		return
	}

	s.enforceCap(w)

	dt := w.Delta()
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, spawner *component.Spawner) {
		// An exhausted non-repeating spawner stays exhausted; only a
		// level reset restores its count.
		if fired[spawner.ID] && !spawner.Active && spawner.Count < spawner.NumSpawn {
			spawner.Active = true
			spawner.Timer = spawner.Delay
			if spawner.Immediate {
				spawner.Timer = 0
			}
		}
		if !spawner.Active {
			return
		}

		spawner.Timer -= dt
		// Cap per-frame output so a zero-interval repeating spawner
		// cannot spin forever.
		spawned := 0
		for spawner.Active && spawner.Timer <= 0 && spawned < spawner.NumSpawn {
			s.spawnOne(w, spawner)
			spawned++

			spawner.Count++
			if spawner.Count >= spawner.NumSpawn {
				if spawner.Repeats {
					spawner.Count = 0
					spawner.Timer += spawner.Delay
				} else {
					spawner.Active = false
				}
				continue
			}
			spawner.Timer += spawner.Interval
		}
	})
}

// enforceCap trims the live chaser population down to the configured
// maximum, oldest first. The config is hot-reloadable, so the cap can
// drop below the live count between ticks.
func (s *SpawnSystem) enforceCap(w *ecs.World) {
	cfg := w.Config()
	if cfg == nil {
		return
	}
	for ecs.Count(w, component.ChaserComponent.Kind()) > cfg.MaxChasers {
		oldest, ok := oldestChaser(w)
		if !ok {
			return
		}
		w.DestroyEntity(oldest)
	}
}

func (s *SpawnSystem) spawnOne(w *ecs.World, spawner *component.Spawner) {
	if cfg := w.Config(); cfg != nil {
		for ecs.Count(w, component.ChaserComponent.Kind()) >= cfg.MaxChasers {
			oldest, ok := oldestChaser(w)
			if !ok {
				break
			}
			w.DestroyEntity(oldest)
		}
	}

	x, y := spawner.X, spawner.Y
	forceScale := 1.0
	if s.script != nil {
		playerX, playerY := playerPosition(w)
		tweak, err := s.script.run(spawner.X, spawner.Y, playerX, playerY, spawner.Count)
		if err != nil {
			log.Printf("spawn: spawner=%d script error: %v", spawner.ID, err)
		} else {
			x += tweak.offsetX
			y += tweak.offsetY
			forceScale = tweak.forceScale
		}
	}

	if _, err := entity.NewChaser(w, s.chaserSpec, x, y, spawner.ID, forceScale); err != nil {
		log.Printf("spawn: spawner=%d spawn chaser: %v", spawner.ID, err)
	}
}

// resetLevel despawns every chaser, puts the player back at its spawn
// point, and restores spawners to the state the level loaded with.
func (s *SpawnSystem) resetLevel(w *ecs.World) {
	ecs.ForEach(w, component.ChaserComponent.Kind(), func(e ecs.Entity, _ *component.Chaser) {
		w.DestroyEntity(e)
	})
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PlayerControllerComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, controller *component.PlayerController, body *component.PhysicsBody) {
			body.Body.SetPosition(cp.Vector{X: controller.SpawnX, Y: controller.SpawnY})
			body.Body.SetVelocity(0, 0)
			if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				transform.X = controller.SpawnX
				transform.Y = controller.SpawnY
			}
		})
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, spawner *component.Spawner) {
		spawner.Active = spawner.DefaultActive
		spawner.Count = 0
		spawner.Timer = spawner.Delay
		if spawner.Immediate {
			spawner.Timer = 0
		}
	})
}

func oldestChaser(w *ecs.World) (ecs.Entity, bool) {
	var oldest ecs.Entity
	var oldestTick uint64
	found := false
	ecs.ForEach(w, component.ChaserComponent.Kind(), func(e ecs.Entity, chaser *component.Chaser) {
		if !found || chaser.SpawnedAt < oldestTick {
			oldest = e
			oldestTick = chaser.SpawnedAt
			found = true
		}
	})
	return oldest, found
}

func playerPosition(w *ecs.World) (float64, float64) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, 0
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return transform.X, transform.Y
}
