package binary

import (
	"context"
	"fmt"
	"io"

	"go.lepak.sg/trees/chops"
	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, deleting, rebalancing).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing. Call Balance to rebuild it into a
// minimum-height tree in one go.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - count is the number of nodes reachable from root
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T, struct{}]
	count int
}

// Instead of using constraints.Ordered, I also considered using
// interface[T any] { CompareTo(T) int } (forgive the syntax).
// This allows T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// This is probably not ideal.

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Empty returns true if there are no keys in the tree.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return *t.find(k) != nil
}

// find returns the slot holding k, or the empty slot where k would be
// inserted.
func (t *Tree[T]) find(k T) **tree.Node[T, struct{}] {
	slot := &t.root

	for *slot != nil {
		n := *slot
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			slot = &n.Left
		case tree.Greater:
			slot = &n.Right
		case tree.Equal:
			return slot
		default:
			panic("unreachable")
		}
	}

	return slot
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Walk down as if searching for k. Every time we turn right,
	// the node we leave is less than k and larger than any such node
	// seen before, so the last one wins.
	// https://courses.csail.mit.edu/6.006/fall11/rec/rec05.pdf
	n := t.root
	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less, tree.Equal:
			n = n.Left
		case tree.Greater:
			p, ok = n.Key, true
			n = n.Right
		default:
			panic("unreachable")
		}
	}

	return
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

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	slot := t.find(k)
	if *slot != nil {
		return false
	}

	*slot = tree.BasicNodeOf(k)
	t.count++
	return true
}

// Delete removes k from the tree and returns true if it was there.
// A node with two children is replaced by its in-order successor,
// which is moved rather than copied.
func (t *Tree[T]) Delete(k T) bool {
	slot := t.find(k)
	del := *slot
	if del == nil {
		return false
	}

	switch {
	case del.Left == nil:
		*slot = del.Right
	case del.Right == nil:
		*slot = del.Left
	default:
		s := &del.Right
		for (*s).Left != nil {
			s = &(*s).Left
		}
		succ := *s
		*s = succ.Right
		succ.Left, succ.Right = del.Left, del.Right
		*slot = succ
	}

	del.Left, del.Right = nil, nil
	t.count--
	return true
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// Clone returns a deep copy of the tree with the same shape.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  cloneNode(t.root),
		count: t.count,
	}
}

func cloneNode[T constraints.Ordered](n *tree.Node[T, struct{}]) *tree.Node[T, struct{}] {
	if n == nil {
		return nil
	}
	c := tree.BasicNodeOf(n.Key)
	c.Left = cloneNode(n.Left)
	c.Right = cloneNode(n.Right)
	return c
}

// Check verifies the ordering invariant and that Len matches the
// number of reachable nodes.
func (t *Tree[T]) Check() error {
	if err := tree.CheckOrder(t.root); err != nil {
		return err
	}
	if n := tree.Count(t.root); n != t.count {
		return fmt.Errorf("count is %d but %d nodes are reachable", t.count, n)
	}
	return nil
}

// Height returns the actual height of the tree, and the height it
// would have if it were as short as possible (what Balance produces).
// Both are -1 for an empty tree.
func (t *Tree[T]) Height() (actual, ideal int) {
	return tree.Height(t.root), tree.IdealHeight(t.count)
}

// Balanced returns true if the tree has the minimum height possible
// for its number of keys.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n *tree.Node[T, struct{}], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !t.visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key) {
		return false
	}

	return t.visitInOrder(n.Right, f)
}

// PreOrder applies f to each key in the tree, parents before their
// children and left subtrees before right ones.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	t.visitPreOrder(t.root, f)
}

func (t *Tree[T]) visitPreOrder(n *tree.Node[T, struct{}], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	return f(n.Key) && t.visitPreOrder(n.Left, f) && t.visitPreOrder(n.Right, f)
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
// Note: InOrderCoroutine starts a goroutine, which exits when
// Stop() is called, ctx is done or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](ctx, t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T, struct{}] {
	return iterator.NewInOrder(t.root, tree.IdealHeight(t.count))
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T, struct{}] {
	return iterator.NewInOrderReverse(t.root, tree.IdealHeight(t.count))
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root, nil)
}

// WriteDOT writes the tree to w as a Graphviz digraph.
func (t *Tree[T]) WriteDOT(w io.Writer) error {
	return tree.WriteDOT(w, t.root)
}
