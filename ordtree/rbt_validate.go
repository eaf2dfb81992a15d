package ordtree

import "golang.org/x/exp/constraints"

// IsValid reports whether the tree still satisfies both the symmetric-order
// invariant and the red-black invariants (root black, no red node with a red
// child, every root-to-leaf path carrying the same black-height).
func (t *RBT[T]) IsValid() bool {
	if isRed(t.root) {
		return false
	}
	_, _, ok := isValidRB[T, uint](t.root, t.cmp, nil, nil)
	return ok
}

// isValidRB checks the red-black invariants bottom-up, accumulating a
// black-height and a depth in the caller-chosen unsigned counter type U —
// the same constraints.Unsigned generality the teacher's SBTree uses for its
// own size/height bookkeeping.
func isValidRB[T any, U constraints.Unsigned](n *rbnode[T], cmp Comparator[T], lo, hi *T) (blackHeight U, depth U, ok bool) {
	if n == nil {
		return 1, 0, true
	}
	if lo != nil && cmp(n.v, *lo) <= 0 {
		return 0, 0, false
	}
	if hi != nil && cmp(n.v, *hi) >= 0 {
		return 0, 0, false
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, false
	}
	lbh, ld, ok := isValidRB[T, U](n.left, cmp, lo, &n.v)
	if !ok {
		return 0, 0, false
	}
	rbh, rd, ok := isValidRB[T, U](n.right, cmp, &n.v, hi)
	if !ok {
		return 0, 0, false
	}
	if lbh != rbh {
		return 0, 0, false
	}
	d := ld
	if rd > d {
		d = rd
	}
	bh := lbh
	if !isRed(n) {
		bh++
	}
	return bh, d + 1, true
}
