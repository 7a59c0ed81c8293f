package ecs

// Pool is a FIFO reuse buffer for detached component instances of a single
// type. The world maintains one per bound component type, but a Pool is an
// ordinary value and can be used on its own.
type Pool[T any] struct {
	items []T
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Put appends an instance to the back of the pool.
func (p *Pool[T]) Put(item T) {
	p.items = append(p.items, item)
}

// Take removes and returns the oldest pooled instance. The second return is
// false when the pool is empty, in which case the zero value is returned.
func (p *Pool[T]) Take() (T, bool) {
	if len(p.items) == 0 {
		var zero T
		return zero, false
	}
	item := p.items[0]
	// Shift rather than reslice so released slots are actually freed.
	copy(p.items, p.items[1:])
	var zero T
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
	return item, true
}

// Len returns the number of pooled instances.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
