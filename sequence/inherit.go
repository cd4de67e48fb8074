package sequence

import (
	"reflect"

	"github.com/kbukum/seqkit/errors"
)

// maxPrototypeDepth bounds the delegation walk in IsArrayOrInheritedArray.
const maxPrototypeDepth = 64

// source is the read surface a prototype offers to an Inherited sequence.
type source[T any] interface {
	Len() int
	At(i int) (T, bool)
}

// delegator is satisfied only by this package's inherited sequences.
type delegator interface {
	prototypeOf() any
}

// native adapts the caller's slice variable as a prototype. Reads go through
// the pointer, so later changes to the slice are visible.
type native[T any] struct {
	s *[]T
}

func (n native[T]) Len() int { return len(*n.s) }

func (n native[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(*n.s) {
		var zero T
		return zero, false
	}
	return (*n.s)[i], true
}

// Inherited is a sequence with no storage of its own at creation. Indexed
// reads and length fall through to its prototype until they are overridden by
// Set or Push.
type Inherited[T any] struct {
	proto  source[T]
	origin any
	own    map[int]T
	length int
	hasLen bool
}

// Inherit creates a sequence delegating to the slice behind proto.
func Inherit[T any](proto *[]T) *Inherited[T] {
	if proto == nil {
		proto = new([]T)
	}
	return &Inherited[T]{proto: native[T]{s: proto}, origin: proto}
}

// Extend creates a sequence delegating to s.
func (s *Inherited[T]) Extend() *Inherited[T] {
	return &Inherited[T]{proto: s, origin: s}
}

// Prototype returns what s delegates to: a *[]T or an *Inherited[T].
func (s *Inherited[T]) Prototype() any { return s.origin }

func (s *Inherited[T]) prototypeOf() any {
	if s == nil {
		return nil
	}
	return s.origin
}

// Len returns the own length once one has been set, else the prototype's.
func (s *Inherited[T]) Len() int {
	if s.hasLen {
		return s.length
	}
	return s.proto.Len()
}

// At returns the element at i, preferring an own value over the prototype's.
// A slot below Len whose prototype element was removed after the own length
// was set reads as absent.
func (s *Inherited[T]) At(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	if v, ok := s.own[i]; ok {
		return v, true
	}
	return s.proto.At(i)
}

// Set stores v at i as an own element. i may equal Len, which appends.
func (s *Inherited[T]) Set(i int, v T) error {
	n := s.Len()
	if i < 0 || i > n {
		return errors.IndexOutOfRange(i, n)
	}
	if s.own == nil {
		s.own = make(map[int]T)
	}
	s.own[i] = v
	if i == n {
		s.length, s.hasLen = n+1, true
	}
	return nil
}

// Push appends values as own elements and returns the new length.
func (s *Inherited[T]) Push(values ...T) int {
	for _, v := range values {
		_ = s.Set(s.Len(), v)
	}
	return s.Len()
}

// Slice returns a new slice of length Len with every visible element. Slots
// that At reports as absent hold the zero value; use At to tell them apart.
func (s *Inherited[T]) Slice() []T {
	n := s.Len()
	result := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, _ := s.At(i)
		result = append(result, v)
	}
	return result
}

// IsArrayOrInheritedArray reports whether v is a slice or array (or a pointer
// to one), or an inherited sequence whose delegation chain ends in a slice.
// A bare nil slice is the absence marker and is not a sequence; callers
// holding an unset `var s []T` that should count as a sequence pass &s.
// Values that only look like sequences, such as maps with numeric keys and a
// "length" entry, are rejected.
func IsArrayOrInheritedArray(v any) bool {
	for depth := 0; depth < maxPrototypeDepth; depth++ {
		if v == nil {
			return false
		}
		if d, ok := v.(delegator); ok {
			v = d.prototypeOf()
			continue
		}
		return isNative(v)
	}
	return false
}

func isNative(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		kind := rv.Elem().Kind()
		return kind == reflect.Slice || kind == reflect.Array
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	default:
		return false
	}
}
