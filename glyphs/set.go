package glyphs

import (
	"iter"
	"slices"
)

// KeyedSet is a set of values of type T, where set membership is decided
// by a key function rather than by comparing whole values. Iteration
// happens in insertion order.
//
// The zero value is not usable; create sets with [NewKeyedSet].
type KeyedSet[T any, K comparable] struct {
	key   func(T) K
	index map[K]int
	items []T
}

// NewKeyedSet creates an empty set which identifies values by key.
func NewKeyedSet[T any, K comparable](key func(T) K) *KeyedSet[T, K] {
	if key == nil {
		panic("glyphs: KeyedSet needs a key function")
	}
	return &KeyedSet[T, K]{
		key:   key,
		index: make(map[K]int),
	}
}

// Insert adds x to the set. If the set already contains a value with the
// same key, the set is left unchanged and Insert returns false.
func (s *KeyedSet[T, K]) Insert(x T) bool {
	k := s.key(x)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, x)
	return true
}

// Contains reports whether the set holds a value with the same key as x.
func (s *KeyedSet[T, K]) Contains(x T) bool {
	_, ok := s.index[s.key(x)]
	return ok
}

// Get returns the member stored for key k.
func (s *KeyedSet[T, K]) Get(k K) (T, bool) {
	if i, ok := s.index[k]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of members.
func (s *KeyedSet[T, K]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All iterates over the members in insertion order.
func (s *KeyedSet[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, x := range s.items {
			if !yield(x) {
				return
			}
		}
	}
}

// Sorted returns a copy of the members, sorted by cmp.
func (s *KeyedSet[T, K]) Sorted(cmp func(a, b T) int) []T {
	if s == nil {
		return nil
	}
	items := slices.Clone(s.items)
	slices.SortFunc(items, cmp)
	return items
}

// UnicodeSet is a set of code points. Members are identified by
// [CodepointKey], i.e. by code point only.
type UnicodeSet = KeyedSet[UnicodeData, rune]

// NewUnicodeSet creates an empty set of code points.
func NewUnicodeSet() *UnicodeSet {
	return NewKeyedSet(CodepointKey)
}

// SortedCodepoints returns the members of s in ascending code point order.
func SortedCodepoints(s *UnicodeSet) []UnicodeData {
	return s.Sorted(CompareUnicode)
}
