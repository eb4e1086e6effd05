package hashtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/hashtable"
	"github.com/dunst0/waitui/str"
)

func TestInsertLookup(t *testing.T) {
	h := hashtable.New[int](0, nil)
	h.Insert(str.View("x"), 1)

	v, ok := h.Lookup(str.View("x"))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = h.Lookup(str.View("y"))
	assert.False(t, ok)
}

func TestDefaultSize(t *testing.T) {
	h := hashtable.New[int](0, nil)
	assert.Equal(t, hashtable.DefaultSize, h.Size())

	h2 := hashtable.New[int](16, nil)
	assert.Equal(t, 16, h2.Size())
}

func TestInsertRejectsExistingKey(t *testing.T) {
	h := hashtable.New[int](0, nil)
	assert.True(t, h.Insert(str.View("x"), 1))
	assert.False(t, h.Insert(str.View("x"), 2), "insert on an existing key must fail and leave the table unchanged")

	v, ok := h.Lookup(str.View("x"))
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestInsertCheckNewestFirstAcrossPredicateDistinctEntries(t *testing.T) {
	h := hashtable.New[int](0, nil)
	inScope := func(scope int) hashtable.ValuePredicate[int] {
		return func(value int) bool { return value/10 == scope }
	}
	assert.True(t, h.InsertCheck(str.View("x"), 10, inScope(1)))
	assert.True(t, h.InsertCheck(str.View("x"), 20, inScope(2)))
	assert.False(t, h.InsertCheck(str.View("x"), 21, inScope(2)), "a second entry matching the same predicate is a duplicate")

	v, ok := h.Lookup(str.View("x"))
	assert.True(t, ok)
	assert.Equal(t, 20, v, "most recently inserted predicate-distinct entry for a key should be found first")

	v, ok = h.LookupCheck(str.View("x"), inScope(1))
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMarkStolenHidesEntry(t *testing.T) {
	h := hashtable.New[int](0, nil)
	h.Insert(str.View("x"), 1)

	assert.True(t, h.MarkStolen(str.View("x")))
	assert.False(t, h.Has(str.View("x")))
}

func TestDestroySkipsStolenEntries(t *testing.T) {
	var destroyed []int
	h := hashtable.New[int](0, func(v int) { destroyed = append(destroyed, v) })
	h.Insert(str.View("x"), 1)
	h.Insert(str.View("y"), 2)
	h.MarkStolen(str.View("x"))

	h.Destroy()

	assert.Equal(t, []int{2}, destroyed)
}

func TestDrainBucketHeadsWhile(t *testing.T) {
	h := hashtable.New[int](4, nil)
	h.Insert(str.View("a"), 10) // scope 0, inserted first
	h.Insert(str.View("b"), 20) // scope 1
	h.Insert(str.View("c"), 21) // scope 1

	var removed []int
	h.DrainBucketHeadsWhile(func(v int) bool { return v >= 20 }, func(v int) { removed = append(removed, v) })

	assert.ElementsMatch(t, []int{20, 21}, removed)
	assert.True(t, h.Has(str.View("a")))
	assert.False(t, h.Has(str.View("b")))
	assert.False(t, h.Has(str.View("c")))
}

func TestHashIsDeterministic(t *testing.T) {
	h1 := hashtable.New[int](997, nil)
	h2 := hashtable.New[int](997, nil)
	h1.Insert(str.View("someIdentifier"), 1)
	h2.Insert(str.View("someIdentifier"), 1)

	v1, ok1 := h1.Lookup(str.View("someIdentifier"))
	v2, ok2 := h2.Lookup(str.View("someIdentifier"))
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, v1, v2)
}
