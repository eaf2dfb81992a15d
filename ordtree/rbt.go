package ordtree

// RBT is a red-black tree kept balanced by a top-down insertion scheme: it
// repairs red violations while descending, using only a four-level sliding
// window of ancestors (anchor/granpa/parent/node), so it never needs parent
// pointers or a second top-down-then-bottom-up pass.
type RBT[T any] struct {
	root *rbnode[T]
	cmp  Comparator[T]
}

// NewRBTree creates an empty red-black tree ordered by cmp.
func NewRBTree[T any](cmp Comparator[T]) *RBT[T] {
	return &RBT[T]{cmp: cmp}
}

// IsEmpty reports whether the tree holds no elements.
func (t *RBT[T]) IsEmpty() bool { return t.root == nil }

// Insert inserts v, repairing red violations on the way down. If a value
// comparing equal to v was already present it is overwritten and returned
// with replaced == true.
func (t *RBT[T]) Insert(v T) (old T, replaced bool) {
	var anchor, granpa, parent, node *rbnode[T]
	var compG, compP, compN, comp int
	node = t.root

	for {
		if node == nil {
			node = &rbnode[T]{v: v, c: red}
			comp = 0
			switch {
			case parent == nil:
				t.root = node
			case compN < 0:
				parent.left = node
			default:
				parent.right = node
			}
		} else {
			comp = t.cmp(v, node.v)
			if comp == 0 {
				old, replaced = node.v, true
				node.v = v
			}
			if isRed(node.left) && isRed(node.right) {
				node.c = red
				node.left.c = black
				node.right.c = black
			}
		}

		if isRed(node) && isRed(parent) {
			switch {
			case compP > 0 && compN > 0:
				granpa.right = parent.left
				granpa.c = red
				parent.left = granpa
				parent.c = black
				switch {
				case anchor == nil:
					t.root = parent
				case compG < 0:
					anchor.left = parent
				case compG > 0:
					anchor.right = parent
				}
				granpa = anchor
				compP = compG

			case compP < 0 && compN < 0:
				granpa.left = parent.right
				granpa.c = red
				parent.right = granpa
				parent.c = black
				switch {
				case anchor == nil:
					t.root = parent
				case compG < 0:
					anchor.left = parent
				case compG > 0:
					anchor.right = parent
				}
				granpa = anchor
				compP = compG

			default:
				if compN < 0 {
					granpa.right = node.left
					granpa.c = red
					parent.left = node.right
					node.left = granpa
					node.right = parent
					node.c = black
					if comp > 0 {
						granpa = parent
					}
					parent = node
					node = granpa
					if comp > 0 {
						compN = -compN
					}
					if comp < 0 {
						compN = -compP
					}
				} else {
					granpa.left = node.right
					granpa.c = red
					parent.right = node.left
					node.right = granpa
					node.left = parent
					node.c = black
					if comp < 0 {
						granpa = parent
					}
					parent = node
					node = granpa
					if comp < 0 {
						compN = -compN
					}
					if comp > 0 {
						compN = -compP
					}
				}
				switch {
				case anchor == nil:
					t.root = parent
				case compG < 0:
					anchor.left = parent
				case compG > 0:
					anchor.right = parent
				}
				granpa = anchor
				compP = compG
				comp = -comp
			}
		}

		anchor, granpa, parent = granpa, parent, node
		if comp < 0 {
			node = node.left
		} else if comp > 0 {
			node = node.right
		} else {
			break
		}
		compG, compP, compN = compP, compN, comp
	}

	t.root.c = black
	return
}

// InsertMin inserts v under the contract that v is smaller than or equal to
// everything already in the tree. Violating that contract corrupts the
// symmetric-order invariant silently — it is not checked.
func (t *RBT[T]) InsertMin(v T) (old T, replaced bool) {
	var anchor, granpa, parent, node *rbnode[T]
	inserted := false
	node = t.root

	for {
		if node == nil {
			if parent != nil && t.cmp(v, parent.v) == 0 {
				old, replaced = parent.v, true
				parent.v = v
				break
			}
			node = &rbnode[T]{v: v, c: red}
			inserted = true
			if parent == nil {
				t.root = node
			} else {
				parent.left = node
			}
		} else if isRed(node.left) && isRed(node.right) {
			node.c = red
			node.left.c = black
			node.right.c = black
		}

		if isRed(node) && isRed(parent) {
			granpa.left = parent.right
			granpa.c = red
			parent.right = granpa
			parent.c = black
			if anchor == nil {
				t.root = parent
			} else {
				anchor.left = parent
			}
			granpa = anchor
		}

		if inserted {
			break
		}
		anchor, granpa, parent = granpa, parent, node
		node = node.left
	}

	t.root.c = black
	return
}

// InsertMax is the mirror image of InsertMin.
func (t *RBT[T]) InsertMax(v T) (old T, replaced bool) {
	var anchor, granpa, parent, node *rbnode[T]
	inserted := false
	node = t.root

	for {
		if node == nil {
			if parent != nil && t.cmp(v, parent.v) == 0 {
				old, replaced = parent.v, true
				parent.v = v
				break
			}
			node = &rbnode[T]{v: v, c: red}
			inserted = true
			if parent == nil {
				t.root = node
			} else {
				parent.right = node
			}
		} else if isRed(node.left) && isRed(node.right) {
			node.c = red
			node.left.c = black
			node.right.c = black
		}

		if isRed(node) && isRed(parent) {
			granpa.right = parent.left
			granpa.c = red
			parent.left = granpa
			parent.c = black
			if anchor == nil {
				t.root = parent
			} else {
				anchor.right = parent
			}
			granpa = anchor
		}

		if inserted {
			break
		}
		anchor, granpa, parent = granpa, parent, node
		node = node.right
	}

	t.root.c = black
	return
}

// Search returns the stored value comparing equal to key, if any.
func (t *RBT[T]) Search(key T) (T, bool) {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.v)
		if c < 0 {
			n = n.left
		} else if c > 0 {
			n = n.right
		} else {
			return n.v, true
		}
	}
	var zero T
	return zero, false
}

// Min returns the smallest stored value.
func (t *RBT[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.v, true
}

// Max returns the largest stored value.
func (t *RBT[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.v, true
}

// Prev returns the largest stored value strictly less than key.
func (t *RBT[T]) Prev(key T) (T, bool) {
	n, p := t.root, (*rbnode[T])(nil)
	for n != nil {
		if t.cmp(key, n.v) <= 0 {
			n = n.left
		} else {
			p = n
			n = n.right
		}
	}
	if p == nil {
		var zero T
		return zero, false
	}
	return p.v, true
}

// Next is the mirror image of Prev.
func (t *RBT[T]) Next(key T) (T, bool) {
	n, p := t.root, (*rbnode[T])(nil)
	for n != nil {
		if t.cmp(key, n.v) < 0 {
			p = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if p == nil {
		var zero T
		return zero, false
	}
	return p.v, true
}

// Copy returns a fresh tree holding the same values as t, rebuilt by
// inserting them in ascending order via InsertMax (which for an ascending
// feed does at most one comparison per element on the way down, same as the
// BST Copy's append-to-a-spine trick, except the result here must keep the
// red-black shape so it is rebuilt through the top-down insert path).
func (t *RBT[T]) Copy() *RBT[T] {
	out := NewRBTree[T](t.cmp)
	next := morrisRB(t.root)
	for v, ok := next(); ok; v, ok = next() {
		out.InsertMax(v)
	}
	return out
}
