package sequence

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// InsertSorted inserts v into the ascending slice *s at its ordered position.
// It returns false, leaving *s untouched, when v is already present.
func InsertSorted[T constraints.Ordered](s *[]T, v T) bool {
	if slices.Contains(*s, v) {
		return false
	}
	i, _ := slices.BinarySearch(*s, v)
	*s = slices.Insert(*s, i, v)
	return true
}

// InsertSortedFunc is InsertSorted for slices ordered by cmp. An element for
// which cmp reports 0 counts as already present.
func InsertSortedFunc[T any](s *[]T, v T, cmp func(a, b T) int) bool {
	i, found := slices.BinarySearchFunc(*s, v, cmp)
	if found {
		return false
	}
	*s = slices.Insert(*s, i, v)
	return true
}

// RemoveFirst removes the first element equal to v and reports whether one
// was found.
func RemoveFirst[T comparable](s *[]T, v T) bool {
	i := slices.Index(*s, v)
	if i < 0 {
		return false
	}
	old := *s
	*s = slices.Delete(old, i, i+1)
	var zero T
	old[len(old)-1] = zero
	return true
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T constraints.Ordered](s []T) bool {
	return slices.IsSorted(s)
}

// IsSortedFunc reports whether s is in ascending order under cmp.
func IsSortedFunc[T any](s []T, cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(s, cmp)
}
