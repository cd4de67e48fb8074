package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"single common", []int{1, 2, 3}, []int{2, 4, 5}, []int{2}},
		{"keeps duplicates of a", []int{2, 1, 2}, []int{2}, []int{2, 2}},
		{"keeps a's order", []int{3, 1, 2}, []int{1, 2, 3}, []int{3, 1, 2}},
		{"disjoint", []int{1}, []int{2}, []int{}},
		{"empty b", []int{1, 2}, nil, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Intersect(tc.a, tc.b)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Intersect(%v, %v) mismatch (-want +got):\n%s", tc.a, tc.b, diff)
			}
		})
	}
}

func TestIntersect_DoesNotMutate(t *testing.T) {
	a, b := []int{1, 2, 3}, []int{3, 2}
	_ = Intersect(a, b)
	if diff := cmp.Diff([]int{1, 2, 3}, a); diff != "" {
		t.Errorf("a mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2}, b); diff != "" {
		t.Errorf("b mutated (-want +got):\n%s", diff)
	}
}

func TestUnionSingle(t *testing.T) {
	s := []int{1, 2}

	UnionSingle(&s, 2)
	if diff := cmp.Diff([]int{1, 2}, s); diff != "" {
		t.Errorf("after UnionSingle(2) (-want +got):\n%s", diff)
	}

	UnionSingle(&s, 3)
	if diff := cmp.Diff([]int{1, 2, 3}, s); diff != "" {
		t.Errorf("after UnionSingle(3) (-want +got):\n%s", diff)
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name          string
		target, other []int
		want          []int
	}{
		{"skips present", []int{1, 2}, []int{3, 1}, []int{1, 2, 3}},
		{"skips repeats in other", []int{1}, []int{4, 4, 5}, []int{1, 4, 5}},
		{"empty target", nil, []int{1, 1}, []int{1}},
		{"empty other", []int{1}, nil, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Union(&tc.target, tc.other)
			if diff := cmp.Diff(tc.want, tc.target); diff != "" {
				t.Errorf("Union mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	in := []int{1, 1, 2, 3, 3, 4}
	got := Distinct(in)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, got); diff != "" {
		t.Errorf("Distinct mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1, 2, 3, 3, 4}, in); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestDistinct_FirstOccurrenceOrder(t *testing.T) {
	got := Distinct([]string{"b", "a", "b", "c", "a"})
	if diff := cmp.Diff([]string{"b", "a", "c"}, got); diff != "" {
		t.Errorf("Distinct mismatch (-want +got):\n%s", diff)
	}
}
