package ordtree

// Remove deletes the value comparing equal to key, if present, and returns
// it. Like Insert, the rebalancing happens entirely on the way down: at
// every node visited, node is black, its sibling (if any) is black, and its
// parent (if any) is red — the loop repaints node red and repairs that
// invariant before stepping past it, so by the time it reaches a leaf the
// node to erase is already red and can be spliced out with no further
// rotation.
func (t *RBT[T]) Remove(key T) (removed T, ok bool) {
	var granpa, parent, sister, node, oldNode *rbnode[T]
	var compN, comp int

	node = t.root
	if node == nil {
		return
	}

	for node != nil {
		if !isRed(node.left) && !isRed(node.right) {
			switch {
			case parent == nil:
				node.c = red
			case sister == nil:
				node.c = red
				parent.c = black
			case !isRed(sister.left) && !isRed(sister.right):
				node.c = red
				sister.c = red
				parent.c = black
			default:
				if isRed(sister.left) {
					if comp < 0 {
						switch {
						case granpa == nil:
							t.root = sister.left
						case compN < 0:
							granpa.left = sister.left
						default:
							granpa.right = sister.left
						}
						granpa = sister.left

						parent.right = granpa.left
						granpa.left = parent

						sister.left = granpa.right
						granpa.right = sister
						sister = parent.right

						node.c = red
						parent.c = black
					} else {
						switch {
						case granpa == nil:
							t.root = sister
						case compN < 0:
							granpa.left = sister
						default:
							granpa.right = sister
						}
						granpa = sister

						parent.left = granpa.right
						granpa.right = parent
						sister = parent.left

						node.c = red
						granpa.c = red
						parent.c = black
						granpa.left.c = black
					}
				} else {
					if comp > 0 {
						switch {
						case granpa == nil:
							t.root = sister.right
						case compN < 0:
							granpa.left = sister.right
						default:
							granpa.right = sister.right
						}
						granpa = sister.right

						parent.left = granpa.right
						granpa.right = parent

						sister.right = granpa.left
						granpa.left = sister
						sister = parent.left

						node.c = red
						parent.c = black
					} else {
						switch {
						case granpa == nil:
							t.root = sister
						case compN < 0:
							granpa.left = sister
						default:
							granpa.right = sister
						}
						granpa = sister

						parent.right = granpa.left
						granpa.left = parent
						sister = parent.right

						node.c = red
						granpa.c = red
						parent.c = black
						granpa.right.c = black
					}
				}
			}
		}

		compN = comp
		if oldNode == nil {
			comp = t.cmp(key, node.v)
		} else {
			comp = -1
		}
		if comp == 0 {
			removed, ok = node.v, true
			oldNode = node
			comp = 1
		}

		if isRed(node.left) || isRed(node.right) {
			if (comp < 0 && isRed(node.left)) || (comp > 0 && isRed(node.right)) {
				granpa = parent
				parent = node
				if comp < 0 {
					node = parent.left
					sister = parent.right
				} else {
					node = parent.right
					sister = parent.left
				}
				compN = comp
				if oldNode == nil {
					comp = t.cmp(key, node.v)
				} else {
					comp = -1
				}
				if comp == 0 {
					removed, ok = node.v, true
					oldNode = node
					comp = 1
				}
			} else {
				if comp < 0 {
					switch {
					case parent == nil:
						t.root = node.right
					case compN < 0:
						parent.left = node.right
					default:
						parent.right = node.right
					}
					granpa = parent
					parent = node.right
					sister = parent.right
					node.right = parent.left
					parent.left = node

					node.c = red
					parent.c = black
					compN = -1
				} else {
					switch {
					case parent == nil:
						t.root = node.left
					case compN < 0:
						parent.left = node.left
					default:
						parent.right = node.left
					}
					granpa = parent
					parent = node.left
					sister = parent.left
					node.left = parent.right
					parent.right = node

					node.c = red
					parent.c = black
					compN = 1
				}
			}
		}

		granpa = parent
		parent = node
		if comp < 0 {
			node = parent.left
			sister = parent.right
		} else if comp > 0 {
			node = parent.right
			sister = parent.left
		} else {
			node = nil
		}
	}

	if oldNode != nil {
		oldNode.v = parent.v
		switch {
		case granpa == nil:
			t.root = parent.right
		case granpa.left == parent:
			granpa.left = parent.right
		default:
			granpa.right = parent.right
		}
	}

	if t.root != nil {
		t.root.c = black
	}
	return
}

// RemoveMin deletes and returns the smallest stored value, using the same
// top-down repair scheme as Remove specialized to always descend left.
func (t *RBT[T]) RemoveMin() (T, bool) {
	var granpa, parent, sister, node *rbnode[T]

	node = t.root
	if node == nil {
		var zero T
		return zero, false
	}

	for node != nil {
		if !isRed(node.left) && !isRed(node.right) {
			switch {
			case parent == nil:
				node.c = red
			case sister == nil:
				node.c = red
				parent.c = black
			case !isRed(sister.left) && !isRed(sister.right):
				node.c = red
				sister.c = red
				parent.c = black
			default:
				if isRed(sister.left) {
					if granpa == nil {
						t.root = sister.left
					} else {
						granpa.left = sister.left
					}
					granpa = sister.left

					parent.right = granpa.left
					granpa.left = parent

					sister.left = granpa.right
					granpa.right = sister
					sister = parent.right

					node.c = red
					parent.c = black
				} else {
					if granpa == nil {
						t.root = sister
					} else {
						granpa.left = sister
					}
					granpa = sister

					parent.right = granpa.left
					granpa.left = parent
					sister = parent.right

					node.c = red
					granpa.c = red
					parent.c = black
					granpa.right.c = black
				}
			}
		}

		if isRed(node.left) || isRed(node.right) {
			if isRed(node.left) {
				granpa = parent
				parent = node
				node = parent.left
				sister = parent.right
			} else {
				if parent == nil {
					t.root = node.right
				} else {
					parent.left = node.right
				}
				granpa = parent
				parent = node.right
				sister = parent.right
				node.right = parent.left
				parent.left = node

				node.c = red
				parent.c = black
			}
		}

		granpa = parent
		parent = node
		node = parent.left
		sister = parent.right
	}

	removed := parent.v
	if granpa == nil {
		t.root = parent.right
	} else {
		granpa.left = parent.right
	}
	if t.root != nil {
		t.root.c = black
	}
	return removed, true
}

// RemoveMax is the mirror image of RemoveMin.
func (t *RBT[T]) RemoveMax() (T, bool) {
	var granpa, parent, sister, node *rbnode[T]

	node = t.root
	if node == nil {
		var zero T
		return zero, false
	}

	for node != nil {
		if !isRed(node.left) && !isRed(node.right) {
			switch {
			case parent == nil:
				node.c = red
			case sister == nil:
				node.c = red
				parent.c = black
			case !isRed(sister.left) && !isRed(sister.right):
				node.c = red
				sister.c = red
				parent.c = black
			default:
				if isRed(sister.left) {
					if granpa == nil {
						t.root = sister
					} else {
						granpa.right = sister
					}
					granpa = sister

					parent.left = granpa.right
					granpa.right = parent
					sister = parent.left

					node.c = red
					granpa.c = red
					parent.c = black
					granpa.left.c = black
				} else {
					if granpa == nil {
						t.root = sister.right
					} else {
						granpa.right = sister.right
					}
					granpa = sister.right

					parent.left = granpa.right
					granpa.right = parent

					sister.right = granpa.left
					granpa.left = sister
					sister = parent.left

					node.c = red
					parent.c = black
				}
			}
		}

		if isRed(node.left) || isRed(node.right) {
			if isRed(node.right) {
				granpa = parent
				parent = node
				node = parent.right
				sister = parent.left
			} else {
				if parent == nil {
					t.root = node.left
				} else {
					parent.right = node.left
				}
				granpa = parent
				parent = node.left
				sister = parent.left
				node.left = parent.right
				parent.right = node

				node.c = red
				parent.c = black
			}
		}

		granpa = parent
		parent = node
		node = parent.right
		sister = parent.left
	}

	removed := parent.v
	if granpa == nil {
		t.root = parent.left
	} else {
		granpa.right = parent.left
	}
	if t.root != nil {
		t.root.c = black
	}
	return removed, true
}

// RemoveAll tears the tree down in O(n) time and O(1) extra space, the same
// rotate-right-then-excise teardown as BST.RemoveAll (the color bits need no
// special handling since every node is discarded).
func (t *RBT[T]) RemoveAll(destroy func(T)) {
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
