package ordtree

// node is the shared record for BST and SPT (spec: they happen to share
// the same node shape). A nil *node denotes an empty subtree; there is no
// parent pointer and no sentinel.
type node[T any] struct {
	v           T
	left, right *node[T]
}

// rotateLeft rotates the subtree rooted at *n to the left in place, via
// pointer-to-pointer so the caller's slot (root, or some parent's child
// link) gets updated with no second pass.
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.right
	r.right = rc.left
	rc.left = r
	*n = rc
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.left
	r.left = lc.right
	lc.right = r
	*n = lc
}
