package ordtree

// rightSpineBuilder's append adds v to the right-spine result tree being built
// by a set combinator: O(1) per emit, producing a degenerate tree the caller
// may Rebalance afterwards.
type rightSpineBuilder[T any] struct {
	root, tail *node[T]
}

func (b *rightSpineBuilder[T]) append(v T) {
	n := &node[T]{v: v}
	if b.tail == nil {
		b.root = n
	} else {
		b.tail.right = n
	}
	b.tail = n
}

func (t *BST[T]) setOp(other *BST[T], op setOp) *BST[T] {
	out := NewBST[T](t.cmp)
	var b rightSpineBuilder[T]
	mergeOrdered(t.cmp, morris(t.root), morris(other.root), op, b.append)
	out.root = b.root
	return out
}

// Union returns a fresh tree holding every value present in t or other (or
// both — the copy from t wins on a tie).
func (t *BST[T]) Union(other *BST[T]) *BST[T] {
	if t == other {
		return t.Copy()
	}
	return t.setOp(other, opUnion)
}

// Intersection returns a fresh tree holding every value present in both
// t and other.
func (t *BST[T]) Intersection(other *BST[T]) *BST[T] {
	if t == other {
		return t.Copy()
	}
	return t.setOp(other, opIntersection)
}

// Diff returns a fresh tree holding every value present in t but not in
// other.
func (t *BST[T]) Diff(other *BST[T]) *BST[T] {
	if t == other {
		return NewBST[T](t.cmp)
	}
	return t.setOp(other, opDiff)
}

// SymDiff returns a fresh tree holding every value present in exactly one
// of t and other.
func (t *BST[T]) SymDiff(other *BST[T]) *BST[T] {
	if t == other {
		return NewBST[T](t.cmp)
	}
	return t.setOp(other, opSymDiff)
}
