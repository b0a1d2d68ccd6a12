package binary

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Balance rebuilds the tree into a minimum-height tree holding the same
// keys, in O(n) time. The nodes are reused, only their links change.
//
// The nodes are flattened into a slice in-order, then the median of
// each range becomes the root of that range's subtree. For ranges of
// even length the upper median is taken.
func (t *Tree[T]) Balance() {
	nodes := make([]*tree.Node[T, struct{}], 0, t.count)
	nodes = flatten(t.root, nodes)
	t.root = fromSorted(nodes)
}

func flatten[T constraints.Ordered](n *tree.Node[T, struct{}], out []*tree.Node[T, struct{}]) []*tree.Node[T, struct{}] {
	if n == nil {
		return out
	}
	out = flatten(n.Left, out)
	out = append(out, n)
	return flatten(n.Right, out)
}

func fromSorted[T constraints.Ordered](nodes []*tree.Node[T, struct{}]) *tree.Node[T, struct{}] {
	if len(nodes) == 0 {
		return nil
	}
	mid := len(nodes) / 2
	n := nodes[mid]
	n.Left = fromSorted(nodes[:mid])
	n.Right = fromSorted(nodes[mid+1:])
	return n
}
