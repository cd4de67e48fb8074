package sequence

import (
	"testing"

	"github.com/kbukum/seqkit/errors"
)

type idItem struct{ id int }

func (i *idItem) GetID() int { return i.id }

type namedItem struct{ name string }

func (n *namedItem) GetName() string { return n.name }

func TestExtendWithID(t *testing.T) {
	item0, item1, item2 := &idItem{123}, &idItem{456}, &idItem{789}
	items := []*idItem{item0, item1, item2}

	ext := ExtendWithID(items)
	if got := ext.Items(); len(got) != len(items) || &got[0] != &items[0] {
		t.Fatal("expected Items to return the same slice, not a copy")
	}

	tests := []struct {
		id   int
		want *idItem
	}{
		{123, item0},
		{456, item1},
		{789, item2},
	}
	for _, tc := range tests {
		got, ok := ext.WithID(tc.id)
		if !ok || got != tc.want {
			t.Errorf("WithID(%d) = %v, %v, want %v", tc.id, got, ok, tc.want)
		}
	}

	if got, ok := ext.WithID(0); ok {
		t.Errorf("WithID(0) = %v, want absent", got)
	}
}

func TestExtendWithName(t *testing.T) {
	item0, item1, item2 := &namedItem{"abc"}, &namedItem{"def"}, &namedItem{"ghi"}
	items := []*namedItem{item0, item1, item2}

	ext := ExtendWithName(items)
	if &ext.Items()[0] != &items[0] {
		t.Fatal("expected Items to return the same slice")
	}
	for _, want := range items {
		got, ok := ext.WithName(want.name)
		if !ok || got != want {
			t.Errorf("WithName(%q) = %v, %v, want %v", want.name, got, ok, want)
		}
	}
	if _, ok := ext.WithName("xyz"); ok {
		t.Error("expected WithName(xyz) to be absent")
	}
}

func TestExtendWithID_FirstMatchWins(t *testing.T) {
	first, second := &idItem{7}, &idItem{7}
	ext := ExtendWithID([]*idItem{first, second})

	got, ok := ext.WithID(7)
	if !ok || got != first {
		t.Errorf("expected the first element with id 7, got %p", got)
	}
	if ext.Len() != 1 {
		t.Errorf("expected 1 distinct key, got %d", ext.Len())
	}
}

func TestExtendWithID_Empty(t *testing.T) {
	ext := ExtendWithID([]*idItem{})
	if _, ok := ext.WithID(1); ok {
		t.Error("expected absent on empty sequence")
	}
	if ext.Has(1) {
		t.Error("expected Has to be false on empty sequence")
	}
}

func TestExtendWithKey_NotSynced(t *testing.T) {
	items := []string{"a", "bb"}
	ext := ExtendWithKey(items, func(s string) int { return len(s) })
	items[0] = "ccc"

	if ext.Has(3) {
		t.Error("expected lookup built before mutation not to see new keys")
	}
	if got, ok := ext.Get(1); !ok || got != "a" {
		t.Errorf("expected the element indexed at build time, got %q, %v", got, ok)
	}
}

func TestExtendWithUniqueKey(t *testing.T) {
	ext, err := ExtendWithUniqueKey([]string{"a", "b"}, func(s string) string { return s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ext.Has("b") {
		t.Error("expected key b")
	}

	_, err = ExtendWithUniqueKey([]int{1, 2, 1}, func(n int) int { return n })
	if !errors.HasCode(err, errors.ErrCodeDuplicateKey) {
		t.Fatalf("expected DUPLICATE_KEY, got %v", err)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Details["first_index"] != 0 || appErr.Details["index"] != 2 {
		t.Errorf("unexpected details: %v", appErr.Details)
	}
}

func TestIndexWithName(t *testing.T) {
	items := []*namedItem{{"a"}, {"b"}, {"b"}}
	if got := IndexWithName(items, "b"); got != 1 {
		t.Errorf("IndexWithName(b) = %d, want 1", got)
	}
	if got := IndexWithName(items, "z"); got != -1 {
		t.Errorf("IndexWithName(z) = %d, want -1", got)
	}
}
