package system

import (
	"github.com/milk9111/chase/ecs"
)

// FlowfieldSystem advances the wavefront by its per-frame budget. With
// the compute-full-flow debug view on it drains the whole wavefront in
// one frame instead.
type FlowfieldSystem struct{}

func NewFlowfieldSystem() *FlowfieldSystem {
	return &FlowfieldSystem{}
}

func (f *FlowfieldSystem) Update(w *ecs.World) {
	if w == nil || w.Flowfield() == nil || w.Config() == nil {
		return
	}

	flow := w.Flowfield()
	secondsPerIter := w.Config().SecondsPerIter

	if views := w.DebugViews(); views != nil && views.ComputeFullFlow {
		flow.Step(w.Delta(), secondsPerIter)
		for flow.Propagating() {
			flow.Step(1, 1)
		}
		return
	}

	flow.Step(w.Delta(), secondsPerIter)
}
