// Package hashtable implements a chained hash map with load-factor driven
// rehashing.
package hashtable

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

const (
	defaultBucketCount = 16
	maxLoadFactor      = 0.75
)

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table is a hash map using separate chaining. Buckets double when the load
// factor exceeds 0.75.
type Table[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    int
}

// New returns a table with the default bucket count.
func New[K comparable, V any]() *Table[K, V] {
	return NewWithBuckets[K, V](defaultBucketCount)
}

// NewWithBuckets returns a table with the given initial bucket count.
func NewWithBuckets[K comparable, V any](buckets int) *Table[K, V] {
	if buckets <= 0 {
		buckets = defaultBucketCount
	}
	return &Table[K, V]{buckets: make([]*entry[K, V], buckets)}
}

func (t *Table[K, V]) Size() int {
	return t.size
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// LoadFactor returns size over bucket count.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// bucketIndex hashes the key's text rendering; works for any comparable key.
func (t *Table[K, V]) bucketIndex(key K) int {
	return int(xxhash.Sum64String(fmt.Sprintf("%v", key)) % uint64(len(t.buckets)))
}

func (t *Table[K, V]) rehash() {
	oldBuckets := t.buckets
	t.buckets = make([]*entry[K, V], len(oldBuckets)*2)
	for _, head := range oldBuckets {
		for current := head; current != nil; {
			next := current.next
			idx := t.bucketIndex(current.key)
			current.next = t.buckets[idx]
			t.buckets[idx] = current
			current = next
		}
	}
}

// Insert adds or updates the value for key.
func (t *Table[K, V]) Insert(key K, value V) {
	if t.LoadFactor() > maxLoadFactor {
		t.rehash()
	}
	idx := t.bucketIndex(key)
	for current := t.buckets[idx]; current != nil; current = current.next {
		if current.key == key {
			current.value = value
			return
		}
	}
	t.buckets[idx] = &entry[K, V]{key: key, value: value, next: t.buckets[idx]}
	t.size++
}

// Get returns the value for key and whether it exists.
func (t *Table[K, V]) Get(key K) (V, bool) {
	idx := t.bucketIndex(key)
	for current := t.buckets[idx]; current != nil; current = current.next {
		if current.key == key {
			return current.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key exists.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes key and reports whether it existed.
func (t *Table[K, V]) Remove(key K) bool {
	idx := t.bucketIndex(key)
	var prev *entry[K, V]
	for current := t.buckets[idx]; current != nil; current = current.next {
		if current.key == key {
			if prev == nil {
				t.buckets[idx] = current.next
			} else {
				prev.next = current.next
			}
			t.size--
			return true
		}
		prev = current
	}
	return false
}

func (t *Table[K, V]) Clear() {
	t.buckets = make([]*entry[K, V], defaultBucketCount)
	t.size = 0
}

// Walk visits every key/value pair in unspecified order; stops early if fn
// returns false.
func (t *Table[K, V]) Walk(fn func(key K, value V) bool) {
	for _, head := range t.buckets {
		for current := head; current != nil; current = current.next {
			if !fn(current.key, current.value) {
				return
			}
		}
	}
}

// Marshal writes size then key/value pairs via gob. Pair order is
// unspecified.
func (t *Table[K, V]) Marshal(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(t.size); err != nil {
		return err
	}
	var encErr error
	t.Walk(func(key K, value V) bool {
		if encErr = enc.Encode(key); encErr != nil {
			return false
		}
		encErr = enc.Encode(value)
		return encErr == nil
	})
	return encErr
}

// Unmarshal clears the table and rebuilds it from r.
func (t *Table[K, V]) Unmarshal(r io.Reader) error {
	t.Clear()
	dec := gob.NewDecoder(r)
	var size int
	if err := dec.Decode(&size); err != nil {
		return fmt.Errorf("decode size: %w", err)
	}
	out := New[K, V]()
	for i := 0; i < size; i++ {
		var (
			key   K
			value V
		)
		if err := dec.Decode(&key); err != nil {
			return fmt.Errorf("decode key %d: %w", i, err)
		}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode value %d: %w", i, err)
		}
		out.Insert(key, value)
	}
	*t = *out
	return nil
}
