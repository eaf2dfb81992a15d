// Package ordtree implements three comparison-based ordered-set containers —
// an unbalanced binary search tree, a top-down red-black tree, and a splay
// tree — sharing one comparator contract and one set-combinator engine.
package ordtree

import "cmp"

// Comparator is the sole authority on element identity: two payloads are
// considered the same key iff Compare(a, b) == 0. It must be a total order
// and is fixed for the lifetime of a tree.
type Comparator[T any] func(a, b T) int

// OrderedCompare builds a Comparator for any type with a built-in total
// order (numbers, strings), backed by the standard library's cmp.Compare.
func OrderedCompare[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}
