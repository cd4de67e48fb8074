package sequence

import (
	"golang.org/x/exp/slices"
)

// Intersect returns the elements of a that also occur in b, in a's order.
// Duplicates in a are kept as many times as they appear.
func Intersect[T comparable](a, b []T) []T {
	in := make(map[T]struct{}, len(b))
	for _, item := range b {
		in[item] = struct{}{}
	}
	result := make([]T, 0)
	for _, item := range a {
		if _, ok := in[item]; ok {
			result = append(result, item)
		}
	}
	return result
}

// UnionSingle appends v to *s unless it is already present.
func UnionSingle[T comparable](s *[]T, v T) {
	if !slices.Contains(*s, v) {
		*s = append(*s, v)
	}
}

// Union appends, in order, every element of other that is not yet in *target.
// Membership is checked against the growing target, so repeats within other
// are appended once.
func Union[T comparable](target *[]T, other []T) {
	for _, item := range other {
		UnionSingle(target, item)
	}
}

// Distinct returns a new slice without duplicates, keeping first occurrences.
func Distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}
