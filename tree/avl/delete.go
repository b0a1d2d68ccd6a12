package avl

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Delete removes k from the tree and returns true if it was there.
//
// A node with two children is replaced by its in-order successor, the
// leftmost node of its right subtree. The successor node itself is
// moved into place, so nodes never change keys.
func (t *Tree[T]) Delete(k T) bool {
	var del *tree.Node[T, Balance]
	if t.recursive {
		del, _ = deleteRec(&t.root, k)
	} else {
		del = t.deleteStack(k)
	}
	if del == nil {
		return false
	}

	t.count--
	t.allocator().Free(del)
	return true
}

// deleteStack unlinks k and returns its node, or nil if k is absent.
func (t *Tree[T]) deleteStack(k T) *tree.Node[T, Balance] {
	p := t.stack()
	defer p.reset()

	slot := &t.root
	for {
		n := *slot
		if n == nil {
			return nil
		}
		c := tree.Compare(k, n.Key)
		if c == tree.Equal {
			break
		}
		switch c {
		case tree.Less:
			p.push(slot, true)
			slot = &n.Left
		case tree.Greater:
			p.push(slot, false)
			slot = &n.Right
		default:
			panic("unreachable")
		}
	}

	del := *slot
	switch {
	case del.Left == nil:
		*slot = del.Right
	case del.Right == nil:
		*slot = del.Left
	default:
		// The successor will sit in slot, and the walk to it continues
		// through the successor's right link.
		p.push(slot, false)
		top := p.n

		s := &del.Right
		for (*s).Left != nil {
			p.push(s, true)
			s = &(*s).Left
		}

		succ := *s
		*s = succ.Right
		succ.Left, succ.Right, succ.Extra = del.Left, del.Right, del.Extra
		*slot = succ

		// that slot was &del.Right, which is gone
		if p.n > top {
			p.slots[top] = &succ.Right
		}
	}

	shorter := true
	for shorter && p.n > 0 {
		slot, left := p.pop()
		if left {
			shorter = shrankLeft(slot)
		} else {
			shorter = shrankRight(slot)
		}
	}

	return del
}

// deleteRec unlinks k from the subtree in slot. It returns the
// unlinked node, or nil if k is absent, and whether the subtree got
// shorter.
func deleteRec[T constraints.Ordered](slot **tree.Node[T, Balance], k T) (del *tree.Node[T, Balance], shorter bool) {
	n := *slot
	if n == nil {
		return nil, false
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		del, shorter = deleteRec(&n.Left, k)
		if shorter {
			shorter = shrankLeft(slot)
		}
		return
	case tree.Greater:
		del, shorter = deleteRec(&n.Right, k)
		if shorter {
			shorter = shrankRight(slot)
		}
		return
	case tree.Equal:
	default:
		panic("unreachable")
	}

	switch {
	case n.Left == nil:
		*slot = n.Right
		return n, true
	case n.Right == nil:
		*slot = n.Left
		return n, true
	}

	succ, shorter := deleteMin(&n.Right)
	succ.Left, succ.Right, succ.Extra = n.Left, n.Right, n.Extra
	*slot = succ
	if shorter {
		shorter = shrankRight(slot)
	}
	return n, shorter
}

// deleteMin unlinks the leftmost node of the non-empty subtree in slot.
func deleteMin[T constraints.Ordered](slot **tree.Node[T, Balance]) (min *tree.Node[T, Balance], shorter bool) {
	n := *slot
	if n.Left == nil {
		*slot = n.Right
		return n, true
	}

	min, shorter = deleteMin(&n.Left)
	if shorter {
		shorter = shrankLeft(slot)
	}
	return
}
