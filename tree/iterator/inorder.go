package iterator

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary tree,
// yielding keys from the smallest to the largest.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered, X any] struct {
	root           *tree.Node[T, X]
	stack          []*tree.Node[T, X]
	started, ended bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2).
// When we pop off a frame from i.stack, we'll know
// we should be in the second half of visit, because we
// already did the first half before pushing on this frame.
// We can resume from (2), popping off the frame and
// pushing on all the left children of the right child.

// NewInOrder creates a new in-order iterator over the tree rooted at
// root. If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int) *InOrder[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}
	return &InOrder[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+1),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T, X]) Next() bool {
	if i == nil || i.ended {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
	} else {
		pop := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		i.pushLeft(pop.Right)
	}

	if len(i.stack) == 0 {
		i.ended = true
		return false
	}
	return true
}

func (i *InOrder[T, X]) pushLeft(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T, _]) Item() T {
	return i.stack[len(i.stack)-1].Key
}

// Reset rewinds the iterator so that the next call to Next yields the
// smallest key again. The stack is kept for reuse.
func (i *InOrder[_, _]) Reset() {
	i.stack = i.stack[:0]
	i.started, i.ended = false, false
}
