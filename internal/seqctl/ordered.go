package seqctl

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/sequence"
)

// insertSorted inserts values into the ascending array items. Elements must
// be all numbers or all strings. It reports how many values were inserted.
func insertSorted(items []any, values []any) ([]any, int, error) {
	all := append(sequence.Copy(items), values...)
	if len(all) == 0 {
		return items, 0, nil
	}
	switch all[0].(type) {
	case float64:
		return insertSortedAs[float64](items, values)
	case string:
		return insertSortedAs[string](items, values)
	default:
		return nil, 0, errors.InvalidInput("A", "insert-sorted needs numbers or strings")
	}
}

func insertSortedAs[T constraints.Ordered](items []any, values []any) ([]any, int, error) {
	typed, err := convert[T]("A", items)
	if err != nil {
		return nil, 0, err
	}
	if !sequence.IsSorted(typed) {
		return nil, 0, errors.InvalidInput("A", "array is not sorted in ascending order")
	}
	extra, err := convert[T]("V", values)
	if err != nil {
		return nil, 0, err
	}

	inserted := 0
	for _, v := range extra {
		if sequence.InsertSorted(&typed, v) {
			inserted++
		}
	}

	result := make([]any, len(typed))
	for i, v := range typed {
		result[i] = v
	}
	return result, inserted, nil
}

func convert[T any](field string, items []any) ([]T, error) {
	typed := make([]T, 0, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			return nil, errors.InvalidInput(field, "insert-sorted needs elements of a single type").
				WithDetail("index", i)
		}
		typed = append(typed, v)
	}
	return typed, nil
}
