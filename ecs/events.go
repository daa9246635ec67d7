package ecs

// TriggerFired is pushed when the player body enters a trigger volume.
type TriggerFired struct {
	SpawnerID int
}

// ResetRequested asks the spawn system to restore spawners to their
// level defaults and despawn all chasers.
type ResetRequested struct{}

// EventQueue is a simple per-frame queue. Systems push during Update and
// consumers drain on their own Update later in the same frame.
type EventQueue struct {
	events []any
}

func (q *EventQueue) Push(event any) {
	q.events = append(q.events, event)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []any {
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
