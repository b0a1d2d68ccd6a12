package tree

import "golang.org/x/exp/constraints"

// Rotations work on a slot: the parent's Left or Right field, or the
// tree's root field. The node in the slot is replaced by one of its
// children, so the caller never has to know which parent owns it.

// RotateLeft rotates the subtree held in slot to the left.
// For example, with n in the slot:
//
//	-> n            p <-
//	  / \          / \
//	 m   p   ->   n   q
//	    / \      / \
//	   o   q    m   o
//
// p now occupies the slot and is returned.
// The ordering invariant m < n < o < p < q is always preserved.
func RotateLeft[T constraints.Ordered, X any](slot **Node[T, X]) *Node[T, X] {
	n := *slot
	if n == nil {
		panic("cannot RotateLeft on nil")
	}
	p := n.Right
	if p == nil {
		panic("cannot RotateLeft with nil right")
	}

	n.Right = p.Left
	p.Left = n
	*slot = p

	return p
}

// RotateRight rotates the subtree held in slot to the right.
// For example, with n in the slot:
//
//	 -> n            l <-
//	   / \          / \
//	  l   o   ->   k   n
//	 / \              / \
//	k   m            m   o
//
// l now occupies the slot and is returned.
// The ordering invariant k < l < m < n < o is always preserved.
func RotateRight[T constraints.Ordered, X any](slot **Node[T, X]) *Node[T, X] {
	n := *slot
	if n == nil {
		panic("cannot RotateRight on nil")
	}
	l := n.Left
	if l == nil {
		panic("cannot RotateRight with nil left")
	}

	n.Left = l.Right
	l.Right = n
	*slot = l

	return l
}
