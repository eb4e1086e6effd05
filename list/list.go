// Package list provides a generic doubly linked list with the
// push/pop/unshift/shift/peek vocabulary of the original waitui list
// (tail operations push/pop, head operations unshift/shift, non-removing
// peek at the head), plus a forward-only iterator and destroyer-driven
// teardown. All operations are O(1).
package list

import (
	golist "github.com/bahlo/generic-list-go"
)

// ElementDestroy is called once per remaining element when a List is
// destroyed, mirroring the original's elementDestroyCallback.
type ElementDestroy[T any] func(T)

// List is a generic doubly linked list.
type List[T any] struct {
	inner   *golist.List[T]
	destroy ElementDestroy[T]
}

// New creates an empty List. destroy may be nil, in which case Destroy
// merely drops the list's own structure and nothing is done per element
// (the Go garbage collector reclaims them).
func New[T any](destroy ElementDestroy[T]) *List[T] {
	return &List[T]{inner: golist.New[T](), destroy: destroy}
}

// Len returns the number of elements currently in the list.
func (l *List[T]) Len() int {
	return l.inner.Len()
}

// Push appends element to the tail of the list.
func (l *List[T]) Push(element T) {
	l.inner.PushBack(element)
}

// Pop removes and returns the tail element. ok is false if the list is
// empty.
func (l *List[T]) Pop() (element T, ok bool) {
	back := l.inner.Back()
	if back == nil {
		return element, false
	}
	l.inner.Remove(back)
	return back.Value, true
}

// Unshift prepends element to the head of the list.
func (l *List[T]) Unshift(element T) {
	l.inner.PushFront(element)
}

// Shift removes and returns the head element. ok is false if the list is
// empty.
func (l *List[T]) Shift() (element T, ok bool) {
	front := l.inner.Front()
	if front == nil {
		return element, false
	}
	l.inner.Remove(front)
	return front.Value, true
}

// Peek returns the head element without removing it. ok is false if the
// list is empty.
func (l *List[T]) Peek() (element T, ok bool) {
	front := l.inner.Front()
	if front == nil {
		return element, false
	}
	return front.Value, true
}

// Destroy invokes the registered ElementDestroy on every remaining
// element, in head-to-tail order, then empties the list.
func (l *List[T]) Destroy() {
	if l.destroy != nil {
		for e := l.inner.Front(); e != nil; e = e.Next() {
			l.destroy(e.Value)
		}
	}
	l.inner.Init()
}

// Iterator walks the list from head to tail. It holds only a cursor, so
// it observes mutations made to the list after it was created, matching
// the original's plain node-pointer cursor.
type Iterator[T any] struct {
	next *golist.Element[T]
}

// Iterator returns a fresh forward iterator positioned before the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.inner.Front()}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.next != nil
}

// Next returns the next element and advances the cursor. Calling Next
// when HasNext is false returns the zero value.
func (it *Iterator[T]) Next() T {
	var zero T
	if it.next == nil {
		return zero
	}
	v := it.next.Value
	it.next = it.next.Next()
	return v
}
