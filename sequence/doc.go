// Package sequence provides generic operations over ordered, index-addressable
// slices: keyed lookups, set-style membership, sorted insertion and removal,
// structural equality, and a classifier that also accepts delegation-based
// (inherited) sequences.
//
// Operations that change a slice's length take a pointer to the caller's slice
// and write the result back through it. Operations that build a new slice never
// return one of their inputs, except where documented.
//
// The nil slice is the single "no value" marker: EmptyToNull produces it and
// SequenceEqual distinguishes it from a non-nil empty slice.
//
// # Usage
//
//	ids := sequence.ExtendWithID(users)
//	if u, ok := ids.WithID(42); ok {
//	    ...
//	}
//
//	sequence.InsertSorted(&scores, 17)
//	sequence.Union(&tags, incoming)
//
// Nothing in this package is safe for concurrent mutation of the same slice;
// callers serialize access themselves.
package sequence
