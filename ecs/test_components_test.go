package ecs_test

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

// Sprite is always bound as *Sprite to exercise reference semantics.
type Sprite struct {
	Frame int
	Asset string
}

// Connection implements the Releasable capability and counts invocations.
type Connection struct {
	Addr     string
	Released int
}

func (c *Connection) Release() {
	c.Released++
}
