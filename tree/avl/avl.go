// Package avl implements an AVL tree: a binary search tree that keeps
// the heights of every node's two subtrees within one of each other,
// so that lookups, insertions and deletions all take O(log n).
//
// Each node stores a Balance (right height minus left height) instead
// of its height. After every insertion or deletion the nodes on the
// path back to the root are revisited and, where a Balance would reach
// ±2, one of four rotations (LL, RR, LR, RL) restores the invariant.
//
// The path back up can be tracked with an explicit stack of child
// slots, which is the default, or with recursion (WithRecursion).
// Both leave exactly the same tree behind.
package avl

import (
	"context"
	"fmt"
	"io"
	"math/bits"

	"go.lepak.sg/trees/chops"
	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree holding a set of keys.
//
// The zero Tree is empty and ready to use, with the explicit path stack
// and nodes from the Go heap. Use New to pick something else.
// A Tree must not be copied after first use; use Clone instead.
//
// A Tree is not safe for concurrent use. Distinct trees share nothing
// unless they were given the same allocator.
//
// Invariants:
//   - For every node N, keys in N.Left are less than N.Key, and keys in
//     N.Right are greater. There are no duplicates.
//   - For every node N, N.Extra is height(N.Right) - height(N.Left)
//     and is one of LeftHeavy, Balanced or RightHeavy.
//   - count is the number of nodes reachable from root.
type Tree[T constraints.Ordered] struct {
	root  *tree.Node[T, Balance]
	count int

	alloc     tree.Allocator[T, Balance]
	recursive bool

	// lazily created, never shared with a clone
	path *path[T]
}

// Option configures a Tree created by New.
type Option[T constraints.Ordered] func(*Tree[T])

// WithRecursion makes the tree track insert and delete paths on the
// call stack instead of the explicit path stack.
func WithRecursion[T constraints.Ordered]() Option[T] {
	return func(t *Tree[T]) {
		t.recursive = true
	}
}

// WithAllocator makes the tree get its nodes from a.
// A nil a means the Go heap.
func WithAllocator[T constraints.Ordered](a tree.Allocator[T, Balance]) Option[T] {
	return func(t *Tree[T]) {
		t.alloc = a
	}
}

// New returns an empty tree.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree[T]) allocator() tree.Allocator[T, Balance] {
	if t.alloc == nil {
		return tree.Heap[T, Balance]{}
	}
	return t.alloc
}

func (t *Tree[T]) stack() *path[T] {
	if t.path == nil {
		t.path = &path[T]{}
	}
	t.path.reset()
	return t.path
}

// Empty returns true if there are no keys in the tree.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Recursive reports whether the tree was created WithRecursion.
func (t *Tree[T]) Recursive() bool {
	return t.recursive
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Left != nil {
		n = n.Left
	}
	return n.Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Right != nil {
		n = n.Right
	}
	return n.Key, true
}

// Height returns the number of edges on the longest path from the root
// to a leaf: 0 for a single key, -1 for an empty tree.
// It only follows the taller child of each node, so it takes O(log n).
func (t *Tree[T]) Height() int {
	h := -1
	for n := t.root; n != nil; h++ {
		if n.Extra == RightHeavy {
			n = n.Right
		} else {
			n = n.Left
		}
	}
	return h
}

// heightBound is an upper bound on the number of nodes on any root to
// leaf path in an AVL tree with count nodes, about 1.44 log2(count+2).
func heightBound(count int) int {
	return bits.Len(uint(count+2))*3/2 + 1
}

// InOrder applies f to each key in the tree in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T, Balance], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return visitInOrder(n.Left, f) && f(n.Key) && visitInOrder(n.Right, f)
}

// InOrderIterator returns an iterator that yields keys in ascending
// order. It can be rewound with Reset.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T, Balance] {
	return iterator.NewInOrder(t.root, heightBound(t.count))
}

// InOrderReverseIterator returns an iterator that yields keys in
// descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T, Balance] {
	return iterator.NewInOrderReverse(t.root, heightBound(t.count))
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// The goroutine behind it exits when the iteration is finished, Stop
// is called or ctx is done.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	return chops.CoIterate[T](ctx, t.InOrderIterator())
}

// String returns a string representation of the tree, with the
// balance of each node next to its key:
//
//	2 (+1)
//	├─L─1 (0)
//	└─R─3 (+1)
//	    └─R─4 (0)
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root, func(n *tree.Node[T, Balance]) string {
		return fmt.Sprintf("%v (%v)", n.Key, n.Extra)
	})
}

// WriteDOT writes the tree to w as a Graphviz digraph.
func (t *Tree[T]) WriteDOT(w io.Writer) error {
	return tree.WriteDOT(w, t.root)
}
