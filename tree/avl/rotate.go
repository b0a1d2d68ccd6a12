package avl

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// The four rotation shapes. Each one takes the slot holding a node that
// is out of balance by two, restructures the subtree with the generic
// tree rotations and then fixes up the balance of the nodes that moved.
// Heights below are relative to the shorter side, h.

// rotateLL fixes a node whose left subtree is two taller, when the left
// child is not right-heavy.
//
//	    p              l
//	   / \            / \
//	  l   C   ->     A   p
//	 / \                / \
//	A   B              B   C
func rotateLL[T constraints.Ordered](slot **tree.Node[T, Balance]) {
	p := *slot
	if p.Left.Extra == RightHeavy {
		panic("rotateLL with right-heavy left child")
	}
	l := tree.RotateRight(slot)
	if l.Extra == LeftHeavy {
		// A is h+1, B is h: the subtree shrinks
		p.Extra, l.Extra = Balanced, Balanced
	} else {
		// only after a delete: A and B are both h+1
		p.Extra, l.Extra = LeftHeavy, RightHeavy
	}
}

// rotateRR is the mirror of rotateLL.
func rotateRR[T constraints.Ordered](slot **tree.Node[T, Balance]) {
	p := *slot
	if p.Right.Extra == LeftHeavy {
		panic("rotateRR with left-heavy right child")
	}
	r := tree.RotateLeft(slot)
	if r.Extra == RightHeavy {
		p.Extra, r.Extra = Balanced, Balanced
	} else {
		p.Extra, r.Extra = RightHeavy, LeftHeavy
	}
}

// rotateLR fixes a node whose left subtree is two taller, when the left
// child is right-heavy. The grandchild g ends up on top.
//
//	    p                g
//	   / \             /   \
//	  l   D    ->     l     p
//	 / \             / \   / \
//	A   g           A   B C   D
//	   / \
//	  B   C
func rotateLR[T constraints.Ordered](slot **tree.Node[T, Balance]) {
	p := *slot
	l := p.Left
	if l.Extra != RightHeavy {
		panic("rotateLR without right-heavy left child")
	}
	tree.RotateLeft(&p.Left)
	g := tree.RotateRight(slot)
	switch g.Extra {
	case LeftHeavy:
		// B was the taller one, C is short
		l.Extra, p.Extra = Balanced, RightHeavy
	case Balanced:
		l.Extra, p.Extra = Balanced, Balanced
	case RightHeavy:
		// C was the taller one, B is short
		l.Extra, p.Extra = LeftHeavy, Balanced
	default:
		panic("unreachable")
	}
	g.Extra = Balanced
}

// rotateRL is the mirror of rotateLR.
//
//	  p                  g
//	 / \               /   \
//	A   r      ->     p     r
//	   / \           / \   / \
//	  g   D         A   B C   D
//	 / \
//	B   C
func rotateRL[T constraints.Ordered](slot **tree.Node[T, Balance]) {
	p := *slot
	r := p.Right
	if r.Extra != LeftHeavy {
		panic("rotateRL without left-heavy right child")
	}
	tree.RotateRight(&p.Right)
	g := tree.RotateLeft(slot)
	switch g.Extra {
	case RightHeavy:
		p.Extra, r.Extra = LeftHeavy, Balanced
	case Balanced:
		p.Extra, r.Extra = Balanced, Balanced
	case LeftHeavy:
		p.Extra, r.Extra = Balanced, RightHeavy
	default:
		panic("unreachable")
	}
	g.Extra = Balanced
}
