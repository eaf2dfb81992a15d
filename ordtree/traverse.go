package ordtree

// morris returns a pull iterator producing every value reachable from root
// in ascending order, in O(1) auxiliary space, by temporarily threading
// predecessor-to-current right links during descent and undoing them on the
// way back out. At every point between calls the tree's links are either
// pristine or mid-descent; a caller that stops pulling before the iterator
// is exhausted leaves threads dangling in the source tree and MUST call
// drain on the same iterator to unwind them.
func morris[T any](root *node[T]) func() (T, bool) {
	cur := root
	return func() (v T, ok bool) {
		for cur != nil {
			if cur.left == nil {
				v, ok = cur.v, true
				cur = cur.right
				return
			}
			pred := cur.left
			for pred.right != nil && pred.right != cur {
				pred = pred.right
			}
			if pred.right == nil {
				pred.right = cur
				cur = cur.left
			} else {
				pred.right = nil
				v, ok = cur.v, true
				cur = cur.right
				return
			}
		}
		return
	}
}

// drain exhausts a pull iterator without using its values, restoring any
// links the iterator left threaded. ok carries over the result of the most
// recent pull, so a caller whose iterator is already exhausted pulls nothing.
func drain[T any](next func() (T, bool), ok bool) {
	for ok {
		_, ok = next()
	}
}

// morrisRB is morris's twin for the red-black node shape. The color bit
// never participates in traversal, so the threading logic is identical.
func morrisRB[T any](root *rbnode[T]) func() (T, bool) {
	cur := root
	return func() (v T, ok bool) {
		for cur != nil {
			if cur.left == nil {
				v, ok = cur.v, true
				cur = cur.right
				return
			}
			pred := cur.left
			for pred.right != nil && pred.right != cur {
				pred = pred.right
			}
			if pred.right == nil {
				pred.right = cur
				cur = cur.left
			} else {
				pred.right = nil
				v, ok = cur.v, true
				cur = cur.right
				return
			}
		}
		return
	}
}
