// Package tree holds the pieces shared by the binary search trees in
// this module: the node type, key ordering, slot rotations, node
// allocators and the printers.
package tree

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Extra carries whatever bookkeeping a
// particular tree needs per node (the AVL balance indicator, for
// example). Trees that need nothing use struct{}.
//
// There is no parent pointer. Trees that need to walk back up keep
// the path themselves.
type Node[T constraints.Ordered, X any] struct {
	Key         T
	Left, Right *Node[T, X]
	Extra       X
}

// NodeOf returns a fresh leaf.
func NodeOf[T constraints.Ordered, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

// BasicNodeOf returns a fresh leaf without extra data.
func BasicNodeOf[T constraints.Ordered](k T) *Node[T, struct{}] {
	return &Node[T, struct{}]{
		Key: k,
	}
}

// MaxHeight is the longest root-to-leaf path, counted in nodes, that
// fixed-size path stacks in this module can hold. An AVL tree holding
// every value of a uint is still shorter than this.
const MaxHeight = bits.UintSize * 3 / 2

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders l against r using only <. Two keys are Equal when
// neither is less than the other, so NaNs compare Equal to everything.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	}
	if r < l {
		return Greater
	}
	return Equal
}
