package ecs

// System is one step of the frame. Systems run in the order they
// were added to the scheduler.
type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: systems}
}

func (s *Scheduler) Add(system System) {
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	w.AdvanceTick()
}
