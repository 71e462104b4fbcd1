package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case.
//
// Duplicate keys are retained. Lookups scan from the most recently added pair, so the latest
// value of a key always shadows the older ones. Iteration, on the other hand, walks the pairs
// in the order they were added.
type Storage struct {
	pairs      []Pair
	uniqueBuff []string
	fold       bool
}

// New returns a Storage comparing keys exactly.
func New() *Storage {
	return new(Storage)
}

// NewFolded returns a Storage comparing keys ASCII case-insensitively, as protocol
// headers are.
func NewFolded() *Storage {
	return &Storage{fold: true}
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int, fold bool) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
		fold:  fold,
	}
}

// Add adds a new pair of key and value. Existing pairs with the same key are kept, but
// shadowed by the new one.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the latest value, corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the latest value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	if i := s.lookup(key); i != -1 {
		return s.pairs[i].Value, true
	}

	return "", false
}

// Values returns an iterator over all the values of the key, the most recent one first.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(s.pairs) - 1; i >= 0; i-- {
			if s.cmp(s.pairs[i].Key, key) && !yield(s.pairs[i].Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	return s.lookup(key) != -1
}

// Delete removes every pair of the key, so that consequent lookups report its absence.
func (s *Storage) Delete(key string) *Storage {
	var n int

	for _, pair := range s.pairs {
		if !s.cmp(pair.Key, key) {
			s.pairs[n] = pair
			n++
		}
	}

	clear(s.pairs[n:])
	s.pairs = s.pairs[:n]

	return s
}

// Keys returns all unique presented keys, in order of their first appearance.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use.
func (s *Storage) Keys() []string {
	s.uniqueBuff = s.uniqueBuff[:0]

	for _, pair := range s.pairs {
		if s.contains(s.uniqueBuff, pair.Key) {
			continue
		}

		s.uniqueBuff = append(s.uniqueBuff, pair.Key)
	}

	return s.uniqueBuff
}

// Pairs returns an iterator over the pairs in insertion order.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a deep copy, which may be used later or stored somewhere safely. However,
// it comes at cost of multiple allocations.
func (s *Storage) Clone() *Storage {
	return &Storage{
		pairs: clone(s.pairs),
		fold:  s.fold,
	}
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	clear(s.pairs)
	s.pairs = s.pairs[:0]
	return s
}

func (s *Storage) lookup(key string) int {
	for i := len(s.pairs) - 1; i >= 0; i-- {
		if s.cmp(s.pairs[i].Key, key) {
			return i
		}
	}

	return -1
}

func (s *Storage) cmp(a, b string) bool {
	if s.fold {
		return strcomp.EqualFold(a, b)
	}

	return a == b
}

func (s *Storage) contains(collection []string, key string) bool {
	for _, element := range collection {
		if s.cmp(element, key) {
			return true
		}
	}

	return false
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
