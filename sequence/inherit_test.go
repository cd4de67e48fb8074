package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/errors"
)

// lookalike exposes the same read surface as Inherited without delegating.
type lookalike struct{ items []string }

func (l lookalike) Len() int { return len(l.items) }

func (l lookalike) At(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

func TestIsArrayOrInheritedArray_Native(t *testing.T) {
	empty := []int{}
	nonEmpty := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		v    any
	}{
		{"empty slice", empty},
		{"non-empty slice", nonEmpty},
		{"pointer to slice", &nonEmpty},
		{"array", [3]int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !IsArrayOrInheritedArray(tc.v) {
				t.Errorf("IsArrayOrInheritedArray(%T) = false, want true", tc.v)
			}
		})
	}
}

func TestIsArrayOrInheritedArray_Inherited(t *testing.T) {
	empty := Inherit(&[]string{})
	nonEmpty := Inherit(&[]string{"a", "b", "c", "d"})
	modified := Inherit(&[]string{"a", "b", "c", "d"})
	modified.Push("e")

	for name, v := range map[string]*Inherited[string]{
		"empty":     empty,
		"non-empty": nonEmpty,
		"modified":  modified,
		"chained":   modified.Extend().Extend(),
	} {
		if !IsArrayOrInheritedArray(v) {
			t.Errorf("IsArrayOrInheritedArray(%s) = false, want true", name)
		}
	}
}

func TestIsArrayOrInheritedArray_NotArray(t *testing.T) {
	var nilInherited *Inherited[int]
	tests := []struct {
		name string
		v    any
	}{
		{"nil", nil},
		{"empty object", map[string]any{}},
		{"object looking like array", map[string]any{"0": "a", "1": "b", "length": 2}},
		{"numeric keyed map", map[int]string{0: "a", 1: "b"}},
		{"struct with same read surface", lookalike{items: []string{"a", "b"}}},
		{"string", "ab"},
		{"number", 2},
		{"nil pointer to slice", (*[]int)(nil)},
		{"nil slice", []string(nil)},
		{"nil inherited", nilInherited},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsArrayOrInheritedArray(tc.v) {
				t.Errorf("IsArrayOrInheritedArray(%#v) = true, want false", tc.v)
			}
		})
	}
}

func TestInherited_DelegatesReads(t *testing.T) {
	proto := []string{"a", "b"}
	s := Inherit(&proto)

	if s.Len() != 2 {
		t.Fatalf("expected inherited length 2, got %d", s.Len())
	}
	if v, ok := s.At(1); !ok || v != "b" {
		t.Errorf("At(1) = %q, %v, want b", v, ok)
	}
	if _, ok := s.At(2); ok {
		t.Error("expected At(2) to be absent")
	}

	proto = append(proto, "c")
	if s.Len() != 3 {
		t.Errorf("expected length to track the prototype, got %d", s.Len())
	}
	if s.Prototype() != &proto {
		t.Error("expected Prototype to return the backing slice pointer")
	}
}

func TestInherited_Push(t *testing.T) {
	proto := []string{"a", "b", "c", "d"}
	s := Inherit(&proto)

	if n := s.Push("e"); n != 5 {
		t.Fatalf("Push returned %d, want 5", n)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, s.Slice()); diff != "" {
		t.Errorf("visible elements mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, proto); diff != "" {
		t.Errorf("prototype mutated (-want +got):\n%s", diff)
	}
}

func TestInherited_SetOverridesPrototype(t *testing.T) {
	proto := []int{1, 2, 3}
	s := Inherit(&proto)

	if err := s.Set(0, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{10, 2, 3}, s.Slice()); diff != "" {
		t.Errorf("visible elements mismatch (-want +got):\n%s", diff)
	}
	if proto[0] != 1 {
		t.Error("expected the prototype to be untouched")
	}

	err := s.Set(5, 1)
	if !errors.HasCode(err, errors.ErrCodeIndexOutOfRange) {
		t.Errorf("expected INDEX_OUT_OF_RANGE for a gap, got %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected length to stay 3, got %d", s.Len())
	}
}

func TestInherited_Chain(t *testing.T) {
	base := Inherit(&[]int{1, 2})
	child := base.Extend()
	child.Push(3)
	base.Push(9)

	if diff := cmp.Diff([]int{1, 2, 9}, base.Slice()); diff != "" {
		t.Errorf("base mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, child.Slice()); diff != "" {
		t.Errorf("child mismatch (-want +got):\n%s", diff)
	}
	if child.Prototype() != base {
		t.Error("expected the child's prototype to be base")
	}
}

func TestInherit_NilPrototype(t *testing.T) {
	s := Inherit[int](nil)
	if s.Len() != 0 {
		t.Errorf("expected empty sequence, got length %d", s.Len())
	}
	s.Push(1)
	if diff := cmp.Diff([]int{1}, s.Slice()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsArrayOrInheritedArray_PointerToNilSlice(t *testing.T) {
	var s []int
	if !IsArrayOrInheritedArray(&s) {
		t.Error("expected a pointer to a slice variable to count as a sequence")
	}
	if !IsArrayOrInheritedArray(Inherit[int](nil)) {
		t.Error("expected an inherited sequence over a fresh slice to count")
	}
}

func TestInherited_PrototypeShrinksBelowOwnLength(t *testing.T) {
	proto := []string{"a", "b", "c"}
	s := Inherit(&proto)
	s.Push("d")
	proto = proto[:1]

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	for _, i := range []int{1, 2} {
		if v, ok := s.At(i); ok {
			t.Errorf("At(%d) = %q, want absent", i, v)
		}
	}
	if v, ok := s.At(3); !ok || v != "d" {
		t.Errorf("At(3) = %q, %v, want \"d\", true", v, ok)
	}
	if diff := cmp.Diff([]string{"a", "", "", "d"}, s.Slice()); diff != "" {
		t.Errorf("visible elements mismatch (-want +got):\n%s", diff)
	}
}
