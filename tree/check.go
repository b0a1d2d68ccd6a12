package tree

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Height returns the number of edges on the longest root-to-leaf path.
// A single node has height 0 and an empty tree has height -1.
func Height[T constraints.Ordered, X any](n *Node[T, X]) int {
	if n == nil {
		return -1
	}
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// IdealHeight returns the height of a minimum-height tree with count
// nodes, i.e. floor(log2(count)), or -1 for an empty tree.
func IdealHeight(count int) int {
	if count <= 0 {
		return -1
	}
	return bits.Len(uint(count)) - 1
}

// Count returns the number of nodes reachable from n.
func Count[T constraints.Ordered, X any](n *Node[T, X]) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}

// CheckOrder verifies that keys strictly increase in-order, which
// means every left subtree holds smaller keys and every right subtree
// larger ones, and that there are no duplicates.
func CheckOrder[T constraints.Ordered, X any](root *Node[T, X]) error {
	var prev *Node[T, X]
	var err error

	var visit func(n *Node[T, X]) bool
	visit = func(n *Node[T, X]) bool {
		if n == nil {
			return true
		}
		if !visit(n.Left) {
			return false
		}
		if prev != nil && !(prev.Key < n.Key) {
			err = fmt.Errorf("key %v follows %v in-order", n.Key, prev.Key)
			return false
		}
		prev = n
		return visit(n.Right)
	}
	visit(root)

	return err
}
