package ecs

import "github.com/rotisserie/eris"

// Binding a component can fail in two ways that indicate caller misuse rather
// than ordinary absence. These are returned as errors; every expected
// not-found condition is reported through a boolean instead.
var (
	// ErrNilComponent is returned when a nil reference component (pointer,
	// map, slice, channel, function, or nil interface) is bound.
	ErrNilComponent = eris.New("cannot bind nil component")

	// ErrDuplicateBinding is returned when an (entity, type) pair is bound a
	// second time. Bindings are never silently overwritten; release the
	// existing component first.
	ErrDuplicateBinding = eris.New("component type already bound to entity")
)
