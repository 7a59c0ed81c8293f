// Package ecs provides an in-memory registry binding entity identifiers to
// typed component data, with per-type FIFO pooling of released instances.
//
// A World is single-threaded bookkeeping: it assumes one caller at a time and
// does no locking of its own. Typed access goes through generic package
// functions (Bind, Get, Release, ...) so component storage stays concrete per
// type with no casts on the caller's side.
package ecs

import (
	"iter"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World owns all registry state: the entity ID allocator and one store (with
// its pool) per component type ever bound. Construction issues entity 1, the
// reserved world entity, so the first CreateEntity call returns 2.
type World struct {
	lastID   EntityID
	stores   map[reflect.Type]iComponentStore
	logger   zerolog.Logger
	capacity int
}

// NewWorld creates an empty world holding only the reserved world entity.
func NewWorld(opts ...Option) *World {
	w := &World{
		lastID:   WorldEntityID,
		stores:   make(map[reflect.Type]iComponentStore),
		logger:   zerolog.Nop(),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateEntity issues the next entity ID. IDs are consecutive and never
// reused. Panics if the ID space is exhausted; at one entity per nanosecond
// that takes centuries, so exhaustion indicates a runaway caller.
func (w *World) CreateEntity() EntityID {
	if w.lastID == math.MaxUint64 {
		panic("ecs: entity ID space exhausted")
	}
	w.lastID++
	w.logger.Debug().Uint64("entity_id", uint64(w.lastID)).Msg("entity created")
	return w.lastID
}

// Issued reports whether e has been issued by this world.
func (w *World) Issued(e EntityID) bool {
	return e >= WorldEntityID && e <= w.lastID
}

// EntityCount returns the number of IDs issued so far, the world entity
// included. Released entities still count: identity is never revoked.
func (w *World) EntityCount() int {
	return int(w.lastID)
}

// ReleaseEntity detaches and pools every component bound to e, across all
// component types. It reports false only when e was never issued; releasing
// an entity with no bindings succeeds and is a no-op.
func (w *World) ReleaseEntity(e EntityID) bool {
	if !w.Issued(e) {
		return false
	}
	released := 0
	for _, store := range w.stores {
		if store.release(e) {
			released++
		}
	}
	w.logger.Debug().
		Uint64("entity_id", uint64(e)).
		Int("components_released", released).
		Msg("entity released")
	return true
}

// Registered returns every component type this world has ever stored,
// ordered by type name. Types persist for the world's lifetime even when all
// their bindings have been released.
func (w *World) Registered() []reflect.Type {
	types := make([]reflect.Type, 0, len(w.stores))
	for typ := range w.stores {
		types = append(types, typ)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}

// Bind registers component under its type T for entity e. It reports false
// without mutating anything when e was never issued. Binding a nil reference
// component fails with ErrNilComponent; binding a (entity, type) pair that is
// already bound fails with ErrDuplicateBinding. The first bind of a type
// creates that type's store and empty pool.
func Bind[T any](w *World, e EntityID, component T) (bool, error) {
	typ := reflect.TypeFor[T]()
	if isNilComponent(any(component)) {
		return false, eris.Wrapf(ErrNilComponent, "binding %s to entity %d", typ, e)
	}
	if !w.Issued(e) {
		return false, nil
	}
	store := storeFor[T](w, true)
	if store.has(e) {
		return false, eris.Wrapf(ErrDuplicateBinding, "binding %s to entity %d", typ, e)
	}
	store.bind(e, component)
	w.logger.Debug().
		Uint64("entity_id", uint64(e)).
		Str("component", typ.String()).
		Msg("component bound")
	return true, nil
}

// BindWorld binds component to the reserved world entity. Use it for
// singleton data that belongs to no particular entity.
func BindWorld[T any](w *World, component T) (bool, error) {
	return Bind(w, WorldEntityID, component)
}

// Get returns the component bound to (e, T) and whether one is present.
// Value-type components come back as copies; pointer components alias the
// stored instance.
func Get[T any](w *World, e EntityID) (T, bool) {
	store := storeFor[T](w, false)
	if store == nil {
		var zero T
		return zero, false
	}
	return store.get(e)
}

// Has reports whether entity e holds a component of type T.
func Has[T any](w *World, e EntityID) bool {
	store := storeFor[T](w, false)
	return store != nil && store.has(e)
}

// Any returns one currently bound T, for singleton-style components where a
// single binding is expected. With multiple holders the oldest surviving
// binding is returned, but callers must not rely on which.
func Any[T any](w *World) (T, bool) {
	store := storeFor[T](w, false)
	if store == nil {
		var zero T
		return zero, false
	}
	for component := range store.all() {
		return component, true
	}
	var zero T
	return zero, false
}

// All yields every bound T across all entities, in binding insertion order.
// An unknown type yields nothing.
func All[T any](w *World) iter.Seq[T] {
	store := storeFor[T](w, false)
	if store == nil {
		return func(func(T) bool) {}
	}
	return store.all()
}

// Entities yields every entity currently holding a T, in binding insertion
// order.
func Entities[T any](w *World) iter.Seq[EntityID] {
	store := storeFor[T](w, false)
	if store == nil {
		return func(func(EntityID) bool) {}
	}
	return store.entities()
}

// Count returns the number of entities currently holding a T.
func Count[T any](w *World) int {
	store := storeFor[T](w, false)
	if store == nil {
		return 0
	}
	return store.len()
}

// Release detaches the (e, T) binding, invokes the component's Releasable
// capability if it has one, and appends the instance to T's pool. It reports
// false when no such binding exists.
func Release[T any](w *World, e EntityID) bool {
	store := storeFor[T](w, false)
	if store == nil || !store.release(e) {
		return false
	}
	w.logger.Debug().
		Uint64("entity_id", uint64(e)).
		Str("component", store.typ.String()).
		Msg("component released")
	return true
}

// Unbound pops the oldest pooled T, or returns the zero value when the pool
// is empty or T has never been bound. Reusing the instance requires an
// explicit Bind; the pool never rebinds on its own.
func Unbound[T any](w *World) T {
	store := storeFor[T](w, false)
	if store == nil {
		var zero T
		return zero
	}
	component, _ := store.pool.Take()
	return component
}

// PoolSize returns the number of detached T instances awaiting reuse.
func PoolSize[T any](w *World) int {
	store := storeFor[T](w, false)
	if store == nil {
		return 0
	}
	return store.poolLen()
}

// storeFor finds the concrete store for T, optionally creating it. This is
// the single place type-erased storage is narrowed back to its element type.
func storeFor[T any](w *World, create bool) *componentStore[T] {
	typ := reflect.TypeFor[T]()
	if store, ok := w.stores[typ]; ok {
		return store.(*componentStore[T])
	}
	if !create {
		return nil
	}
	store := newComponentStore[T](w.capacity)
	w.stores[typ] = store
	return store
}

// isNilComponent reports whether a reference-typed component is nil.
// Non-nilable kinds (structs, ints, strings, ...) are never nil.
func isNilComponent(component any) bool {
	if component == nil {
		return true
	}
	v := reflect.ValueOf(component)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
