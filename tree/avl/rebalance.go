package avl

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// The single-step rebalance rules, shared by the stack and recursive
// paths so that both leave exactly the same shape behind.
// Each takes the slot of the ancestor being revisited and reports
// whether the height change must still be propagated to its parent.

// grewLeft is called after the left subtree of *slot got taller.
// At most one rotation ever happens on an insert: it restores the
// height the subtree had before, so the walk stops there.
func grewLeft[T constraints.Ordered](slot **tree.Node[T, Balance]) bool {
	n := *slot
	switch n.Extra {
	case RightHeavy:
		n.Extra = Balanced
		return false
	case Balanced:
		n.Extra = LeftHeavy
		return true
	case LeftHeavy:
		if n.Left.Extra == RightHeavy {
			rotateLR(slot)
		} else {
			rotateLL(slot)
		}
		return false
	default:
		panic("unreachable")
	}
}

func grewRight[T constraints.Ordered](slot **tree.Node[T, Balance]) bool {
	n := *slot
	switch n.Extra {
	case LeftHeavy:
		n.Extra = Balanced
		return false
	case Balanced:
		n.Extra = RightHeavy
		return true
	case RightHeavy:
		if n.Right.Extra == LeftHeavy {
			rotateRL(slot)
		} else {
			rotateRR(slot)
		}
		return false
	default:
		panic("unreachable")
	}
}

// shrankLeft is called after the left subtree of *slot got shorter.
// Unlike insertion, a rotation here may shorten the subtree as well,
// and then the walk goes on.
func shrankLeft[T constraints.Ordered](slot **tree.Node[T, Balance]) bool {
	n := *slot
	switch n.Extra {
	case LeftHeavy:
		n.Extra = Balanced
		return true
	case Balanced:
		n.Extra = RightHeavy
		return false
	case RightHeavy:
		if n.Right.Extra == LeftHeavy {
			rotateRL(slot)
			return true
		}
		rotateRR(slot)
		return (*slot).Extra == Balanced
	default:
		panic("unreachable")
	}
}

func shrankRight[T constraints.Ordered](slot **tree.Node[T, Balance]) bool {
	n := *slot
	switch n.Extra {
	case RightHeavy:
		n.Extra = Balanced
		return true
	case Balanced:
		n.Extra = LeftHeavy
		return false
	case LeftHeavy:
		if n.Left.Extra == RightHeavy {
			rotateLR(slot)
			return true
		}
		rotateLL(slot)
		return (*slot).Extra == Balanced
	default:
		panic("unreachable")
	}
}
