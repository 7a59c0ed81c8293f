package ecs

// iComponentStore is the type-erased view of a per-type component store.
// The world drives whole-entity operations and summary reporting through it;
// typed access goes through the generic package functions, which downcast to
// the concrete store exactly once.
type iComponentStore interface {
	len() int
	poolLen() int
	release(e EntityID) bool
}
