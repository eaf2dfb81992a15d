package ordtree

// ascend returns a pull iterator walking t in ascending order via
// Min/Next — splaying as it goes, the way the original library's set
// operations walk their operands, rather than the Morris traversal BST and
// RBT use. It mutates t's shape (every splay tree operation does) but never
// its content.
func (t *SPT[T]) ascend() func() (T, bool) {
	started := false
	var last T
	return func() (v T, ok bool) {
		if !started {
			started = true
			last, ok = t.Min()
		} else {
			last, ok = t.Next(last)
		}
		return last, ok
	}
}

func (t *SPT[T]) setOp(other *SPT[T], op setOp) *SPT[T] {
	out := NewSplayTree[T](t.cmp)
	mergeOrdered(t.cmp, t.ascend(), other.ascend(), op, func(v T) { out.InsertMax(v) })
	return out
}

// Union returns a fresh tree containing a copy of every value present in t
// or other (or both — the value from t wins on a tie). It splays t and
// other as a side effect but does not change their content.
func (t *SPT[T]) Union(other *SPT[T]) *SPT[T] {
	if t == other {
		return t.Copy()
	}
	return t.setOp(other, opUnion)
}

// Intersection returns a fresh tree holding every value present in both t
// and other.
func (t *SPT[T]) Intersection(other *SPT[T]) *SPT[T] {
	if t == other {
		return t.Copy()
	}
	return t.setOp(other, opIntersection)
}

// Diff returns a fresh tree holding every value present in t but not other.
func (t *SPT[T]) Diff(other *SPT[T]) *SPT[T] {
	if t == other {
		return NewSplayTree[T](t.cmp)
	}
	return t.setOp(other, opDiff)
}

// SymDiff returns a fresh tree holding every value present in exactly one
// of t and other.
func (t *SPT[T]) SymDiff(other *SPT[T]) *SPT[T] {
	if t == other {
		return NewSplayTree[T](t.cmp)
	}
	return t.setOp(other, opSymDiff)
}
