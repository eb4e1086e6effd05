// Package hashtable implements the chained hash table waitui's symbol
// table is built on. The bucket-selection hash function and default
// bucket count are fixed deliberately, because symboltable.ExitScope
// depends on the exact chain ordering (newest-first per bucket) that
// this hash and insertion order produce.
package hashtable

import (
	"github.com/spaolacci/murmur3"

	"github.com/dunst0/waitui/str"
)

// DefaultSize is the bucket count used when New is given size <= 0,
// matching SYMBOLTABLE_SIZE in the source this was ported from.
const DefaultSize = 997

// entry is one node of a bucket's chain. Entries are never reordered in
// place; new entries are always prepended, so within a bucket, entries
// are in newest-first (reverse insertion) order.
type entry[V any] struct {
	key         str.View
	fingerprint uint64
	value       V
	stolen      bool
	next        *entry[V]
}

// ElementDestroy is invoked once per live (non-stolen) remaining entry
// when a HashTable is destroyed.
type ElementDestroy[V any] func(V)

// HashTable is a generic chained hash table keyed by str.View.
type HashTable[V any] struct {
	buckets []*entry[V]
	destroy ElementDestroy[V]
}

// New creates a HashTable with the given bucket count (DefaultSize if
// size <= 0). destroy may be nil.
func New[V any](size int, destroy ElementDestroy[V]) *HashTable[V] {
	if size <= 0 {
		size = DefaultSize
	}
	return &HashTable[V]{buckets: make([]*entry[V], size), destroy: destroy}
}

// Size returns the bucket count.
func (h *HashTable[V]) Size() int {
	return len(h.buckets)
}

// bucketIndex reproduces the original byte-sum-plus-perturbation hash
// exactly: sum of every byte, plus a perturbation derived from the first
// byte, modulo the bucket count.
func (h *HashTable[V]) bucketIndex(key str.View) int {
	if len(key) == 0 {
		return 0
	}
	var sum int64
	for i := 0; i < len(key); i++ {
		sum += int64(key[i])
	}
	first := int64(key[0])
	sum += first%11 + (first << 3) - first
	idx := sum % int64(len(h.buckets))
	if idx < 0 {
		idx += int64(len(h.buckets))
	}
	return int(idx)
}

// fingerprint is an internal fast-path comparison key, cached per entry
// so long chains can reject a mismatch without a byte-for-byte compare.
// It plays no part in bucket selection and changes no observable
// behavior.
func fingerprint(key str.View) uint64 {
	return murmur3.Sum64([]byte(key))
}

// ValuePredicate disambiguates entries that share a key, e.g. the same
// identifier declared in two different scopes.
type ValuePredicate[V any] func(V) bool

// InsertCheck prepends a new entry for key, making it the new bucket
// head, unless a live entry for key already satisfies predicate (nil
// predicate matches any value), in which case it fails: it returns false
// and leaves the table unchanged. This mirrors
// waitui_hashtable_insert_check's chain walk before the prepend.
func (h *HashTable[V]) InsertCheck(key str.View, value V, predicate ValuePredicate[V]) bool {
	if h.HasCheck(key, predicate) {
		return false
	}
	idx := h.bucketIndex(key)
	h.buckets[idx] = &entry[V]{key: key, fingerprint: fingerprint(key), value: value, next: h.buckets[idx]}
	return true
}

// Insert is InsertCheck with no predicate: it fails if any live entry for
// key already exists.
func (h *HashTable[V]) Insert(key str.View, value V) bool {
	return h.InsertCheck(key, value, nil)
}

// LookupCheck returns the first live entry for key whose value satisfies
// predicate (nil predicate matches any value), searching newest-first.
func (h *HashTable[V]) LookupCheck(key str.View, predicate ValuePredicate[V]) (value V, ok bool) {
	idx := h.bucketIndex(key)
	fp := fingerprint(key)
	for e := h.buckets[idx]; e != nil; e = e.next {
		if e.stolen || e.fingerprint != fp || e.key != key {
			continue
		}
		if predicate == nil || predicate(e.value) {
			return e.value, true
		}
	}
	return value, false
}

// Lookup is LookupCheck with no predicate.
func (h *HashTable[V]) Lookup(key str.View) (value V, ok bool) {
	return h.LookupCheck(key, nil)
}

// HasCheck reports whether LookupCheck would succeed.
func (h *HashTable[V]) HasCheck(key str.View, predicate ValuePredicate[V]) bool {
	_, ok := h.LookupCheck(key, predicate)
	return ok
}

// Has is HasCheck with no predicate.
func (h *HashTable[V]) Has(key str.View) bool {
	return h.HasCheck(key, nil)
}

// MarkStolenCheck flags the first live matching entry as stolen: it stays
// in the chain (preserving bucket order for any in-progress walk) but is
// no longer visible to Lookup/Has, and Destroy will not invoke the
// element destroyer on it (ownership of its value has passed elsewhere).
func (h *HashTable[V]) MarkStolenCheck(key str.View, predicate ValuePredicate[V]) bool {
	idx := h.bucketIndex(key)
	fp := fingerprint(key)
	for e := h.buckets[idx]; e != nil; e = e.next {
		if e.stolen || e.fingerprint != fp || e.key != key {
			continue
		}
		if predicate == nil || predicate(e.value) {
			e.stolen = true
			return true
		}
	}
	return false
}

// MarkStolen is MarkStolenCheck with no predicate.
func (h *HashTable[V]) MarkStolen(key str.View) bool {
	return h.MarkStolenCheck(key, nil)
}

// DrainBucketHeadsWhile removes, from every bucket independently, entries
// at the head of the chain for as long as pred holds for that head's
// value, calling onRemove (if non-nil) for each removed value before
// moving on to the new head. This is exactly the algorithm
// symboltable.ExitScope needs: because insertion always prepends,
// everything declared in the scope being exited sits at or near the head
// of its bucket, in newest-first order, so peeling heads while they match
// the exiting scope removes precisely that scope's declarations and
// leaves everything underneath untouched.
func (h *HashTable[V]) DrainBucketHeadsWhile(pred ValuePredicate[V], onRemove ElementDestroy[V]) {
	for i := range h.buckets {
		for h.buckets[i] != nil && pred(h.buckets[i].value) {
			removed := h.buckets[i]
			h.buckets[i] = removed.next
			if onRemove != nil {
				onRemove(removed.value)
			}
		}
	}
}

// Destroy invokes the registered element destroyer on every live
// (non-stolen) entry, then empties the table.
func (h *HashTable[V]) Destroy() {
	if h.destroy != nil {
		for i := range h.buckets {
			for e := h.buckets[i]; e != nil; e = e.next {
				if !e.stolen {
					h.destroy(e.value)
				}
			}
		}
	}
	for i := range h.buckets {
		h.buckets[i] = nil
	}
}
