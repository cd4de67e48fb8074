package sequence

import (
	"golang.org/x/exp/slices"

	"github.com/kbukum/seqkit/errors"
)

// Clear truncates *s to zero length. The backing array is kept and the former
// elements are zeroed.
func Clear[T any](s *[]T) {
	if s == nil {
		return
	}
	clear(*s)
	*s = (*s)[:0]
}

// Range returns a new slice holding s[start] through s[end], end inclusive.
// Both bounds are clamped to s; an empty range yields an empty slice.
//
//	Range([]int{1, 2, 3, 4}, 2, 3) // [3 4]
func Range[T any](s []T, start, end int) []T {
	start = max(start, 0)
	end = min(end, len(s)-1)
	if start > end {
		return make([]T, 0)
	}
	result := make([]T, end-start+1)
	copy(result, s[start:end+1])
	return result
}

// Take returns a new slice with the first count elements of s.
func Take[T any](s []T, count int) []T {
	count = min(max(count, 0), len(s))
	result := make([]T, count)
	copy(result, s[:count])
	return result
}

// EmptyToNull returns nil for an empty slice and s itself otherwise.
func EmptyToNull[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// SequenceEqual reports whether a and b are both nil, or both non-nil with the
// same length and eq holding pairwise. eq need not be reflexive.
func SequenceEqual[T any](a, b []T, eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equal is SequenceEqual with ==.
func Equal[T comparable](a, b []T) bool {
	return SequenceEqual(a, b, func(x, y T) bool { return x == y })
}

// Swap exchanges s[i] and s[j]. It panics if either index is out of range.
func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// TrySwap is Swap returning an error instead of panicking.
func TrySwap[T any](s []T, i, j int) error {
	for _, idx := range []int{i, j} {
		if idx < 0 || idx >= len(s) {
			return errors.IndexOutOfRange(idx, len(s))
		}
	}
	Swap(s, i, j)
	return nil
}

// Rotate returns a new slice with s rotated left by offset. Negative offsets
// rotate right.
func Rotate[T any](s []T, offset int) []T {
	result := make([]T, 0, len(s))
	if len(s) == 0 {
		return result
	}
	offset %= len(s)
	if offset < 0 {
		offset += len(s)
	}
	result = append(result, s[offset:]...)
	return append(result, s[:offset]...)
}

// Copy returns a shallow copy of s. A nil slice stays nil.
func Copy[T any](s []T) []T {
	return slices.Clone(s)
}

// IndexOf returns the position of the first element matching pred, or -1.
func IndexOf[T any](s []T, pred func(T) bool) int {
	return slices.IndexFunc(s, pred)
}

// IsInArray reports whether v occurs in s.
func IsInArray[T comparable](s []T, v T) bool {
	return slices.Contains(s, v)
}

// IsUndefinedOrEmpty reports whether s is nil or has no elements.
func IsUndefinedOrEmpty[T any](s []T) bool {
	return len(s) == 0
}
