package sequence

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInsertSorted_UnsortedCalls(t *testing.T) {
	var list []int
	for _, v := range []int{1, 3, 2, 0} {
		if !InsertSorted(&list, v) {
			t.Errorf("InsertSorted(%d) = false, want true", v)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertSorted_Duplicates(t *testing.T) {
	var list []int
	if !InsertSorted(&list, 1) {
		t.Fatal("expected first insert to succeed")
	}
	if InsertSorted(&list, 1) {
		t.Error("expected duplicate insert to return false")
	}
	if diff := cmp.Diff([]int{1}, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertSorted_Strings(t *testing.T) {
	list := []string{"b", "d"}
	InsertSorted(&list, "c")
	InsertSorted(&list, "a")
	InsertSorted(&list, "e")
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if !IsSorted(list) {
		t.Error("expected list to stay sorted")
	}
}

func TestInsertSortedFunc(t *testing.T) {
	fold := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
	list := []string{"apple", "Cherry"}
	if !InsertSortedFunc(&list, "banana", fold) {
		t.Fatal("expected banana to be inserted")
	}
	if InsertSortedFunc(&list, "APPLE", fold) {
		t.Error("expected APPLE to count as present")
	}
	if diff := cmp.Diff([]string{"apple", "banana", "Cherry"}, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if !IsSortedFunc(list, fold) {
		t.Error("expected list to be sorted under fold")
	}
}

func TestRemoveFirst(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		list := []int{1, 2, 3}
		if !RemoveFirst(&list, 2) {
			t.Fatal("expected removal")
		}
		if diff := cmp.Diff([]int{1, 3}, list); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		list := []int{1, 3}
		if RemoveFirst(&list, 2) {
			t.Fatal("expected no removal")
		}
		if diff := cmp.Diff([]int{1, 3}, list); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		var list []int
		if RemoveFirst(&list, 2) {
			t.Error("expected false on empty list")
		}
	})

	t.Run("only first occurrence", func(t *testing.T) {
		list := []int{2, 1, 2}
		RemoveFirst(&list, 2)
		if diff := cmp.Diff([]int{1, 2}, list); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("releases tail slot", func(t *testing.T) {
		a, b := new(int), new(int)
		list := []*int{a, b}
		RemoveFirst(&list, a)
		if tail := list[:2][1]; tail != nil {
			t.Error("expected the vacated slot to be zeroed")
		}
	})
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("expected sorted input to be reported sorted")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("expected unsorted input to be reported unsorted")
	}
}
