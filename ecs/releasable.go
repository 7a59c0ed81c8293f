package ecs

// Releasable is an optional capability for component types that own external
// resources. When a component implementing it is detached (Release or
// ReleaseEntity), the world calls Release exactly once before the instance
// enters its type's pool. Taking a pooled instance back out via Unbound does
// not call it again.
type Releasable interface {
	Release()
}
