package ordtree

// SPT is a top-down splay tree: every search, insertion, or removal ends by
// moving the accessed node to the root, using a synthetic header node and
// two scratch spines instead of the textbook bottom-up zig-zig/zig-zag
// recursion, so it needs no parent pointers and no recursion at all.
type SPT[T any] struct {
	root *node[T]
	cmp  Comparator[T]
}

// NewSplayTree creates an empty splay tree ordered by cmp.
func NewSplayTree[T any](cmp Comparator[T]) *SPT[T] {
	return &SPT[T]{cmp: cmp}
}

// IsEmpty reports whether the tree holds no elements.
func (t *SPT[T]) IsEmpty() bool { return t.root == nil }

// splay moves the node comparing equal to key to the root, or — if no such
// node exists — the node that would sit right above where key belongs (its
// would-be parent).
func (t *SPT[T]) splay(key T) {
	var header node[T]
	left, right := &header, &header
	n := t.root
	if n == nil {
		return
	}

	for {
		c := t.cmp(key, n.v)
		switch {
		case c < 0:
			if n.left == nil {
				goto assemble
			}
			if t.cmp(key, n.left.v) < 0 {
				tmp := n.left
				n.left = tmp.right
				tmp.right = n
				n = tmp
				if n.left == nil {
					goto assemble
				}
			}
			right.left = n
			right = n
			n = n.left
		case c > 0:
			if n.right == nil {
				goto assemble
			}
			if t.cmp(key, n.right.v) > 0 {
				tmp := n.right
				n.right = tmp.left
				tmp.left = n
				n = tmp
				if n.right == nil {
					goto assemble
				}
			}
			left.right = n
			left = n
			n = n.right
		default:
			goto assemble
		}
	}

assemble:
	left.right = n.left
	right.left = n.right
	n.left = header.right
	n.right = header.left
	t.root = n
}

// splayLeft moves the smallest node to the root.
func (t *SPT[T]) splayLeft() {
	var header node[T]
	right := &header
	n := t.root
	if n == nil {
		return
	}

	for {
		if n.left == nil {
			break
		}
		tmp := n.left
		n.left = tmp.right
		tmp.right = n
		n = tmp
		if n.left == nil {
			break
		}
		right.left = n
		right = n
		n = n.left
	}

	right.left = n.right
	n.right = header.left
	t.root = n
}

// splayRight moves the largest node to the root.
func (t *SPT[T]) splayRight() {
	var header node[T]
	left := &header
	n := t.root
	if n == nil {
		return
	}

	for {
		if n.right == nil {
			break
		}
		tmp := n.right
		n.right = tmp.left
		tmp.left = n
		n = tmp
		if n.right == nil {
			break
		}
		left.right = n
		left = n
		n = n.right
	}

	left.right = n.left
	n.left = header.right
	t.root = n
}

// Insert inserts v, leaving it at the root. If a value comparing equal to v
// was already present it is overwritten and returned with replaced == true.
func (t *SPT[T]) Insert(v T) (old T, replaced bool) {
	if t.root == nil {
		t.root = &node[T]{v: v}
		return
	}
	t.splay(v)
	oldRoot := t.root
	c := t.cmp(v, oldRoot.v)
	if c == 0 {
		old, replaced = oldRoot.v, true
		oldRoot.v = v
		return
	}
	n := &node[T]{v: v}
	if c > 0 {
		n.left = oldRoot
		n.right = oldRoot.right
		oldRoot.right = nil
	} else {
		n.right = oldRoot
		n.left = oldRoot.left
		oldRoot.left = nil
	}
	t.root = n
	return
}

// InsertMin inserts v under the contract that v is smaller than or equal to
// everything already in the tree. Violating that contract corrupts the
// symmetric-order invariant silently — it is not checked.
func (t *SPT[T]) InsertMin(v T) (old T, replaced bool) {
	t.splayLeft()
	oldRoot := t.root
	if oldRoot != nil && t.cmp(v, oldRoot.v) == 0 {
		old, replaced = oldRoot.v, true
		oldRoot.v = v
		return
	}
	n := &node[T]{v: v, right: oldRoot}
	t.root = n
	return
}

// InsertMax is the mirror image of InsertMin.
func (t *SPT[T]) InsertMax(v T) (old T, replaced bool) {
	t.splayRight()
	oldRoot := t.root
	if oldRoot != nil && t.cmp(v, oldRoot.v) == 0 {
		old, replaced = oldRoot.v, true
		oldRoot.v = v
		return
	}
	n := &node[T]{v: v, left: oldRoot}
	t.root = n
	return
}

// Search splays key to the root and reports whether it was found.
func (t *SPT[T]) Search(key T) (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splay(key)
	if t.cmp(key, t.root.v) == 0 {
		return t.root.v, true
	}
	var zero T
	return zero, false
}

// Min splays the smallest value to the root and returns it.
func (t *SPT[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splayLeft()
	return t.root.v, true
}

// Max splays the largest value to the root and returns it.
func (t *SPT[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splayRight()
	return t.root.v, true
}

// Prev splays key to the root and returns the largest stored value strictly
// less than key. If key itself ends up at the root, the predecessor is
// found by splaying the left subtree's maximum up next to it.
func (t *SPT[T]) Prev(key T) (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splay(key)
	if t.cmp(t.root.v, key) >= 0 {
		if t.root.left == nil {
			var zero T
			return zero, false
		}
		oldRoot := t.root
		t.root = oldRoot.left
		oldRoot.left = nil
		t.splayRight()
		t.root.right = oldRoot
	}
	return t.root.v, true
}

// Next is the mirror image of Prev.
func (t *SPT[T]) Next(key T) (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splay(key)
	if t.cmp(t.root.v, key) <= 0 {
		if t.root.right == nil {
			var zero T
			return zero, false
		}
		oldRoot := t.root
		t.root = oldRoot.right
		oldRoot.right = nil
		t.splayLeft()
		t.root.left = oldRoot
	}
	return t.root.v, true
}

// Remove splays key to the root and, if found, excises it by splaying its
// right subtree's minimum up to take its place.
func (t *SPT[T]) Remove(key T) (removed T, ok bool) {
	if t.root == nil {
		return
	}
	t.splay(key)
	if t.cmp(t.root.v, key) != 0 {
		return
	}
	removed, ok = t.root.v, true
	oldRoot := t.root
	if oldRoot.right == nil {
		t.root = oldRoot.left
	} else {
		t.root = oldRoot.right
		t.splayLeft()
		t.root.left = oldRoot.left
	}
	return
}

// RemoveMin splays the smallest value to the root and excises it.
func (t *SPT[T]) RemoveMin() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splayLeft()
	oldRoot := t.root
	t.root = oldRoot.right
	return oldRoot.v, true
}

// RemoveMax splays the largest value to the root and excises it.
func (t *SPT[T]) RemoveMax() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	t.splayRight()
	oldRoot := t.root
	t.root = oldRoot.left
	return oldRoot.v, true
}

// RemoveAll tears the tree down in O(n) time and O(1) extra space, the same
// rotate-right-then-excise teardown used by BST and RBT.
func (t *SPT[T]) RemoveAll(destroy func(T)) {
	root := t.root
	t.root = nil
	for root != nil {
		if root.left != nil {
			left := root.left
			right := left.right
			left.right = root
			root.left = right
			root = left
		} else {
			right := root.right
			if destroy != nil {
				destroy(root.v)
			}
			root = right
		}
	}
}

// Copy returns a fresh, degenerate splay tree holding the same values as t,
// built by walking t in ascending order via Min/Next and InsertMax — the
// same technique as the original's copy routine, since a splay tree's shape
// is policy, not identity, and Copy is free to leave t more balanced than it
// found it.
func (t *SPT[T]) Copy() *SPT[T] {
	out := NewSplayTree[T](t.cmp)
	v, ok := t.Min()
	for ok {
		out.InsertMax(v)
		v, ok = t.Next(v)
	}
	return out
}
