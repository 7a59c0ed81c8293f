package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/bindery/ecs"
)

func TestPoolTakeEmpty(t *testing.T) {
	p := ecs.NewPool[Position]()

	item, ok := p.Take()
	assert.False(t, ok)
	assert.Equal(t, Position{}, item)
	assert.Equal(t, 0, p.Len())
}

func TestPoolFIFO(t *testing.T) {
	p := ecs.NewPool[int]()

	p.Put(1)
	p.Put(2)
	p.Put(3)
	assert.Equal(t, 3, p.Len())

	for want := 1; want <= 3; want++ {
		item, ok := p.Take()
		assert.True(t, ok)
		assert.Equal(t, want, item)
	}
	_, ok := p.Take()
	assert.False(t, ok)
}

func TestPoolInterleavedPutTake(t *testing.T) {
	p := ecs.NewPool[string]()

	p.Put("a")
	p.Put("b")

	item, _ := p.Take()
	assert.Equal(t, "a", item)

	p.Put("c")
	item, _ = p.Take()
	assert.Equal(t, "b", item)
	item, _ = p.Take()
	assert.Equal(t, "c", item)
	assert.Equal(t, 0, p.Len())
}

func TestPoolPointerIdentity(t *testing.T) {
	p := ecs.NewPool[*Sprite]()

	s := &Sprite{Asset: "wall.png"}
	p.Put(s)

	got, ok := p.Take()
	assert.True(t, ok)
	assert.Same(t, s, got)
}
