package iterator

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverse[int, any])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T constraints.Ordered, X any] struct {
	root           *tree.Node[T, X]
	stack          []*tree.Node[T, X]
	started, ended bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root. heightHint works as it does for NewInOrder.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T constraints.Ordered, X any](
	root *tree.Node[T, X], heightHint int) *InOrderReverse[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}
	return &InOrderReverse[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+1),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T, X]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil || i.ended {
		return false
	}

	if !i.started {
		i.started = true
		i.pushRight(i.root)
	} else {
		pop := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		i.pushRight(pop.Left)
	}

	if len(i.stack) == 0 {
		i.ended = true
		return false
	}
	return true
}

func (i *InOrderReverse[T, X]) pushRight(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T, _]) Item() T {
	return i.stack[len(i.stack)-1].Key
}

// Reset rewinds the iterator to the largest key.
func (i *InOrderReverse[_, _]) Reset() {
	i.stack = i.stack[:0]
	i.started, i.ended = false, false
}
