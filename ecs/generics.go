package ecs

import (
	"github.com/milk9111/chase/ecs/component"
)

// Add attaches value to the entity under the given kind. Passing a nil
// value or a dead entity is an error.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e.ID, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID()).Get(e.ID)
	if !ok {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID()).Has(e.ID)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) {
	w.store(kind.ID()).Remove(e.ID)
}

// ForEach visits every live entity holding the component. The id slice is
// copied up front so callbacks may add or remove components mid-iteration.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, t *T)) {
	store := w.store(kind.ID())
	ids := append([]int(nil), store.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		v, ok := store.Get(id)
		if !ok {
			continue
		}
		t, ok := v.(*T)
		if !ok {
			continue
		}
		fn(e, t)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	sa, sb := w.store(ka.ID()), w.store(kb.ID())
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, ok := sa.Get(id)
		if !ok {
			continue
		}
		vb, ok := sb.Get(id)
		if !ok {
			continue
		}
		a, aok := va.(*A)
		b, bok := vb.(*B)
		if !aok || !bok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	sa, sb, sc := w.store(ka.ID()), w.store(kb.ID()), w.store(kc.ID())
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, ok := sa.Get(id)
		if !ok {
			continue
		}
		vb, ok := sb.Get(id)
		if !ok {
			continue
		}
		vc, ok := sc.Get(id)
		if !ok {
			continue
		}
		a, aok := va.(*A)
		b, bok := vb.(*B)
		c, cok := vc.(*C)
		if !aok || !bok || !cok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns any one entity holding the component. Useful for
// singletons like the player or the camera.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	store := w.store(kind.ID())
	for _, id := range store.Entities() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return Entity{}, false
}

// Count reports how many live entities hold the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	n := 0
	store := w.store(kind.ID())
	for _, id := range store.Entities() {
		if _, ok := w.entities.handle(id); ok {
			n++
		}
	}
	return n
}
