package ordtree

// setOp names one of the four boolean set combinators.
type setOp int

const (
	opUnion setOp = iota
	opIntersection
	opDiff
	opSymDiff
)

// mergeOrdered walks two ascending sequences produced by a and b and calls
// emit, in ascending order, for every value the combinator op keeps. It is
// the one engine shared by BST, RBT, and SPT — each variant differs only in
// how it produces a/b (Morris traversal, or splay-based min+next) and in how
// emit builds the result tree.
//
// When op stops pulling from one side before it is exhausted (intersection
// or diff, once the other side runs out first), mergeOrdered still drains
// that side fully so a Morris-threaded source gets its right links restored,
// even though nothing more is emitted from it.
func mergeOrdered[T any](cmp Comparator[T], a, b func() (T, bool), op setOp, emit func(T)) {
	av, aok := a()
	bv, bok := b()

	for aok && bok {
		switch c := cmp(av, bv); {
		case c < 0:
			if op == opUnion || op == opDiff || op == opSymDiff {
				emit(av)
			}
			av, aok = a()
		case c > 0:
			if op == opUnion || op == opSymDiff {
				emit(bv)
			}
			bv, bok = b()
		default:
			if op == opUnion || op == opIntersection {
				emit(av)
			}
			av, aok = a()
			bv, bok = b()
		}
	}

	switch op {
	case opUnion, opSymDiff:
		for aok {
			emit(av)
			av, aok = a()
		}
		for bok {
			emit(bv)
			bv, bok = b()
		}
	case opDiff:
		for aok {
			emit(av)
			av, aok = a()
		}
		drain(b, bok)
	case opIntersection:
		drain(a, aok)
		drain(b, bok)
	}
}
