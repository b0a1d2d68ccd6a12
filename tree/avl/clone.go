package avl

import (
	"fmt"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Clear removes every key, handing each node back to the allocator.
func (t *Tree[T]) Clear() {
	release(t.allocator(), t.root)
	t.root = nil
	t.count = 0
}

// release frees every node of the subtree rooted at n without
// recursion or a stack: a node with a left child is rotated right
// until the left spine is gone, then freed.
func release[T constraints.Ordered](a tree.Allocator[T, Balance], n *tree.Node[T, Balance]) {
	for n != nil {
		if l := n.Left; l != nil {
			n.Left, l.Right = l.Right, n
			n = l
			continue
		}
		next := n.Right
		a.Free(n)
		n = next
	}
}

// Clone returns a deep copy of the tree with the same shape, balance
// values and options. The copy shares the allocator.
// If the allocator fails part way, every node already copied is freed
// again and the error is returned.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	a := t.allocator()
	root, err := cloneNode(a, t.root)
	if err != nil {
		return nil, fmt.Errorf("avl: clone: %w", err)
	}

	return &Tree[T]{
		root:      root,
		count:     t.count,
		alloc:     t.alloc,
		recursive: t.recursive,
	}, nil
}

func cloneNode[T constraints.Ordered](a tree.Allocator[T, Balance], n *tree.Node[T, Balance]) (*tree.Node[T, Balance], error) {
	if n == nil {
		return nil, nil
	}

	c, err := a.New(n.Key, n.Extra)
	if err != nil {
		return nil, err
	}

	if c.Left, err = cloneNode(a, n.Left); err != nil {
		a.Free(c)
		return nil, err
	}
	if c.Right, err = cloneNode(a, n.Right); err != nil {
		release(a, c.Left)
		a.Free(c)
		return nil, err
	}

	return c, nil
}
