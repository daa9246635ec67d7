package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/prefabs"
)

// SteeringSystem pushes chasers along the flowfield. Each chaser gets
// the flow force, a wall-avoidance force that falls off with the square
// of the distance, and a small random jitter so packs do not move in
// lockstep.
type SteeringSystem struct {
	rotationSpeed float64
	rng           *rand.Rand
}

func NewSteeringSystem(spec *prefabs.ChaserSpec) *SteeringSystem {
	s := &SteeringSystem{
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
	s.SetChaserSpec(spec)
	return s
}

// SetChaserSpec picks up retuned prefab values on hot reload.
func (s *SteeringSystem) SetChaserSpec(spec *prefabs.ChaserSpec) {
	s.rotationSpeed = 10.0
	if spec != nil && spec.RotationSpeed > 0 {
		s.rotationSpeed = spec.RotationSpeed
	}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil || w.Flowfield() == nil || w.Level() == nil || w.Config() == nil {
		return
	}

	cfg := w.Config()
	flow := w.Flowfield()
	lvl := w.Level()
	pw := w.PhysicsWorld()
	dt := w.Delta()

	ecs.ForEach3(w, component.ChaserComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, chaser *component.Chaser, body *component.PhysicsBody, transform *component.Transform) {
			pos := body.Body.Position()

			tx, ty := lvl.WorldToTile(pos.X, pos.Y)
			dir := flow.FlowAt(tx, ty, cfg.FlowfieldSmooth, cfg.FlowCostThreshold)
			if !dir.Valid() {
				body.Body.SetForce(cp.Vector{})
				return
			}

			force := cp.Vector{X: dir.X * chaser.MaxForce, Y: dir.Y * chaser.MaxForce}

			if pw != nil {
				if wall, dist, ok := pw.NearestWall(geom.Pt(pos.X, pos.Y), cfg.ChaserDetectionRadius); ok && dist > 0 {
					awayX := pos.X - wall.X
					awayY := pos.Y - wall.Y
					length := math.Hypot(awayX, awayY)
					if length > 0 {
						mag := math.Min(cfg.ChaserAvoidanceMul/(dist*dist), cfg.ChaserAvoidanceMax)
						force.X += awayX / length * mag
						force.Y += awayY / length * mag
					}
				}
			}

			jitter := s.rng.Float64() * 2 * math.Pi
			force.X += math.Cos(jitter) * cfg.ChaserRNGForce * chaser.MaxForce
			force.Y += math.Sin(jitter) * cfg.ChaserRNGForce * chaser.MaxForce

			body.Body.SetForce(force)

			chaser.Facing = rotateToward(chaser.Facing, math.Atan2(dir.Y, dir.X), s.rotationSpeed*dt)
			transform.Angle = chaser.Facing
		})
}

// rotateToward eases an angle toward target along the shortest arc.
func rotateToward(current, target, amount float64) float64 {
	diff := math.Mod(target-current+3*math.Pi, 2*math.Pi) - math.Pi
	ease := 1 - math.Exp(-amount)
	return current + diff*ease
}
