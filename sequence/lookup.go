package sequence

import (
	"github.com/kbukum/seqkit/errors"
)

// Identified is implemented by elements that carry a numeric id.
type Identified interface {
	GetID() int
}

// Named is implemented by elements that carry a name.
type Named interface {
	GetName() string
}

// Lookup is a read-only key index layered over a slice. It is built once from
// the slice's contents and is not updated when the slice changes afterwards.
type Lookup[K comparable, T any] struct {
	items []T
	index map[K]T
}

// ExtendWithKey indexes items by the key returned from key. When several
// elements share a key the first one in slice order wins.
func ExtendWithKey[K comparable, T any](items []T, key func(T) K) *Lookup[K, T] {
	index := make(map[K]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := index[k]; !ok {
			index[k] = item
		}
	}
	return &Lookup[K, T]{items: items, index: index}
}

// ExtendWithUniqueKey is like ExtendWithKey but fails when two elements share
// a key.
func ExtendWithUniqueKey[K comparable, T any](items []T, key func(T) K) (*Lookup[K, T], error) {
	index := make(map[K]T, len(items))
	positions := make(map[K]int, len(items))
	for i, item := range items {
		k := key(item)
		if first, ok := positions[k]; ok {
			return nil, errors.DuplicateKey(k).
				WithDetail("first_index", first).
				WithDetail("index", i)
		}
		positions[k] = i
		index[k] = item
	}
	return &Lookup[K, T]{items: items, index: index}, nil
}

// Get returns the first element bearing key. The boolean is false when no
// element matched.
func (l *Lookup[K, T]) Get(key K) (T, bool) {
	item, ok := l.index[key]
	return item, ok
}

// Has reports whether some element bears key.
func (l *Lookup[K, T]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Len returns the number of distinct keys.
func (l *Lookup[K, T]) Len() int { return len(l.index) }

// Items returns the indexed slice itself, not a copy.
func (l *Lookup[K, T]) Items() []T { return l.items }

// IDLookup indexes elements by GetID.
type IDLookup[T Identified] struct {
	*Lookup[int, T]
}

// ExtendWithID indexes items by their id.
func ExtendWithID[T Identified](items []T) IDLookup[T] {
	return IDLookup[T]{ExtendWithKey(items, func(item T) int { return item.GetID() })}
}

// WithID returns the first element whose id equals id.
func (l IDLookup[T]) WithID(id int) (T, bool) {
	return l.Get(id)
}

// NameLookup indexes elements by GetName.
type NameLookup[T Named] struct {
	*Lookup[string, T]
}

// ExtendWithName indexes items by their name.
func ExtendWithName[T Named](items []T) NameLookup[T] {
	return NameLookup[T]{ExtendWithKey(items, func(item T) string { return item.GetName() })}
}

// WithName returns the first element whose name equals name.
func (l NameLookup[T]) WithName(name string) (T, bool) {
	return l.Get(name)
}

// IndexWithName returns the position of the first element named name, or -1.
func IndexWithName[T Named](items []T, name string) int {
	return IndexOf(items, func(item T) bool { return item.GetName() == name })
}
