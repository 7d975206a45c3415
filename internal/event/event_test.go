package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoneNeverFires(t *testing.T) {
	ev := None[string]()

	called := false
	d := ev.Subscribe(func(string) { called = true })
	d.Dispose()
	d.Dispose()

	assert.False(t, called)
}

func TestEmitter(t *testing.T) {
	em := NewEmitter[int]()

	var first, second []int
	d1 := em.Subscribe(func(v int) { first = append(first, v) })
	em.Subscribe(func(v int) { second = append(second, v) })
	assert.Equal(t, 2, em.Len())

	em.Fire(1)
	d1.Dispose()
	d1.Dispose()
	em.Fire(2)

	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{1, 2}, second)
	assert.Equal(t, 1, em.Len())
}

func TestEmitterOrder(t *testing.T) {
	em := NewEmitter[string]()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		em.Subscribe(func(string) { order = append(order, i) })
	}
	em.Fire("x")

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestNoopDisposable(t *testing.T) {
	assert.NotPanics(t, NoopDisposable.Dispose)
}
