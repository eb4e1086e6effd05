package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/list"
)

func TestPushPop(t *testing.T) {
	l := list.New[int](nil)
	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(t, 3, l.Len())

	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, l.Len())
}

func TestUnshiftShift(t *testing.T) {
	l := list.New[int](nil)
	l.Unshift(1)
	l.Unshift(2)
	l.Unshift(3)

	v, ok := l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestPeekDoesNotRemove(t *testing.T) {
	l := list.New[int](nil)
	l.Push(42)

	v, ok := l.Peek()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, l.Len())
}

func TestEmptyListOperations(t *testing.T) {
	l := list.New[int](nil)

	_, ok := l.Pop()
	assert.False(t, ok)
	_, ok = l.Shift()
	assert.False(t, ok)
	_, ok = l.Peek()
	assert.False(t, ok)
}

func TestIteratorWalksHeadToTail(t *testing.T) {
	l := list.New[int](nil)
	l.Push(1)
	l.Push(2)
	l.Push(3)

	it := l.Iterator()
	var got []int
	for it.HasNext() {
		got = append(got, it.Next())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDestroyInvokesCallbackPerElement(t *testing.T) {
	var destroyed []int
	l := list.New[int](func(v int) { destroyed = append(destroyed, v) })
	l.Push(1)
	l.Push(2)

	l.Destroy()

	assert.Equal(t, []int{1, 2}, destroyed)
	assert.Equal(t, 0, l.Len())
}
