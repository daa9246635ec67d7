package system

import (
	"testing"

	"github.com/milk9111/chase/config"
	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/level"
	"github.com/milk9111/chase/nav"
	"github.com/milk9111/chase/prefabs"
)

func TestSteeringPushesAlongFlow(t *testing.T) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	cfg := config.Default()
	cfg.ChaserRNGForce = 0
	cfg.FlowfieldSmooth = false
	w.SetConfig(cfg)

	w.SetLevel(&level.Level{Width: 5, Height: 5, TileSize: 16})

	flow, err := nav.NewFlowfield(5, 5, make([]uint8, 25))
	if err != nil {
		t.Fatalf("new flowfield: %v", err)
	}
	flow.SetTarget(4.5, 0.5)
	for i := 0; ; i++ {
		flow.Step(1, 1)
		if !flow.Propagating() {
			break
		}
		if i > 100 {
			t.Fatal("flowfield did not drain")
		}
	}
	w.SetFlowfield(flow)

	spec := &prefabs.ChaserSpec{Radius: 4, Mass: 1, MaxForce: 100}
	e := w.CreateEntity()
	body := w.PhysicsWorld().AddChaserBody(e, geom.Pt(8, 8), spec.Radius, spec.Mass)
	if err := ecs.Add(w, e, component.ChaserComponent.Kind(), &component.Chaser{MaxForce: spec.MaxForce}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: spec.Radius}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 8, Y: 8}); err != nil {
		t.Fatalf("add: %v", err)
	}

	w.SetDelta(1.0 / 60)
	s := NewSteeringSystem(spec)
	s.Update(w)

	force := body.Force()
	// The target sits due east of the chaser's tile.
	if force.X <= 0 {
		t.Fatalf("expected eastward force, got %+v", force)
	}
}
