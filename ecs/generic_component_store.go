package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// componentStore holds every binding of a single component type T, plus that
// type's reuse pool. Lookup goes through an integer-keyed map; a side slice
// carries the committed insertion order for iteration.
type componentStore[T any] struct {
	typ      reflect.Type
	bindings *intmap.Map[EntityID, T]
	order    []EntityID
	pool     *Pool[T]
}

func newComponentStore[T any](capacity int) *componentStore[T] {
	return &componentStore[T]{
		typ:      reflect.TypeFor[T](),
		bindings: intmap.New[EntityID, T](capacity),
		pool:     NewPool[T](),
	}
}

func (s *componentStore[T]) len() int {
	return s.bindings.Len()
}

func (s *componentStore[T]) has(e EntityID) bool {
	_, ok := s.bindings.Get(e)
	return ok
}

func (s *componentStore[T]) poolLen() int {
	return s.pool.Len()
}

// bind records the binding for e. The caller has already rejected duplicates.
func (s *componentStore[T]) bind(e EntityID, component T) {
	s.bindings.Put(e, component)
	s.order = append(s.order, e)
}

func (s *componentStore[T]) get(e EntityID) (T, bool) {
	return s.bindings.Get(e)
}

// release detaches e's binding, runs the component's Releasable capability if
// it has one, and pools the instance. Reports false when e has no binding.
func (s *componentStore[T]) release(e EntityID) bool {
	component, ok := s.bindings.Get(e)
	if !ok {
		return false
	}
	s.bindings.Del(e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if r, ok := any(component).(Releasable); ok {
		r.Release()
	}
	s.pool.Put(component)
	return true
}

// all yields every bound component in insertion order.
func (s *componentStore[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.order {
			component, ok := s.bindings.Get(e)
			if !ok {
				continue
			}
			if !yield(component) {
				return
			}
		}
	}
}

// entities yields every entity holding a T, in insertion order.
func (s *componentStore[T]) entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, e := range s.order {
			if !yield(e) {
				return
			}
		}
	}
}
