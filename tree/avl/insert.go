package avl

import (
	"fmt"

	"go.lepak.sg/trees/tree"
)

// Insert inserts k into the tree.
// If k is already in the tree, Insert returns false and changes nothing.
// If the allocator can't provide a node, the error wraps its error
// (tree.ErrExhausted for a full tree.Pool) and the tree is unchanged.
func (t *Tree[T]) Insert(k T) (bool, error) {
	var (
		ok  bool
		err error
	)
	if t.recursive {
		ok, _, err = t.insertRec(&t.root, k)
	} else {
		ok, err = t.insertStack(k)
	}
	if err != nil {
		return false, fmt.Errorf("avl: insert %v: %w", k, err)
	}
	if ok {
		t.count++
	}
	return ok, nil
}

func (t *Tree[T]) insertStack(k T) (bool, error) {
	p := t.stack()
	defer p.reset()

	slot := &t.root
	for *slot != nil {
		n := *slot
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			p.push(slot, true)
			slot = &n.Left
		case tree.Greater:
			p.push(slot, false)
			slot = &n.Right
		case tree.Equal:
			return false, nil
		default:
			panic("unreachable")
		}
	}

	n, err := t.allocator().New(k, Balanced)
	if err != nil {
		return false, err
	}
	*slot = n

	taller := true
	for taller && p.n > 0 {
		slot, left := p.pop()
		if left {
			taller = grewLeft(slot)
		} else {
			taller = grewRight(slot)
		}
	}

	return true, nil
}

// insertRec inserts k into the subtree in slot. It reports whether a
// node was added and whether the subtree got taller.
func (t *Tree[T]) insertRec(slot **tree.Node[T, Balance], k T) (added, taller bool, err error) {
	n := *slot
	if n == nil {
		n, err = t.allocator().New(k, Balanced)
		if err != nil {
			return false, false, err
		}
		*slot = n
		return true, true, nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		added, taller, err = t.insertRec(&n.Left, k)
		if taller {
			taller = grewLeft(slot)
		}
	case tree.Greater:
		added, taller, err = t.insertRec(&n.Right, k)
		if taller {
			taller = grewRight(slot)
		}
	case tree.Equal:
	default:
		panic("unreachable")
	}

	return
}
