package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// ErrCorrupt is wrapped by every error Check returns.
var ErrCorrupt = errors.New("avl: tree corrupt")

// Check walks the whole tree and verifies the invariants listed on
// Tree. It returns nil for a valid tree. Only a bug in this package,
// or a tree copied by value and then modified, can make it fail.
func (t *Tree[T]) Check() error {
	if err := tree.CheckOrder(t.root); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	_, count, err := checkBalance(t.root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if count != t.count {
		return fmt.Errorf("%w: count is %d but %d nodes are reachable", ErrCorrupt, t.count, count)
	}

	return nil
}

func checkBalance[T constraints.Ordered](n *tree.Node[T, Balance]) (height, count int, err error) {
	if n == nil {
		return -1, 0, nil
	}

	hl, cl, err := checkBalance(n.Left)
	if err != nil {
		return 0, 0, err
	}
	hr, cr, err := checkBalance(n.Right)
	if err != nil {
		return 0, 0, err
	}

	skew := hr - hl
	if skew < -1 || skew > 1 {
		return 0, 0, fmt.Errorf("key %v is out of balance by %d", n.Key, skew)
	}
	if Balance(skew) != n.Extra {
		return 0, 0, fmt.Errorf("key %v has balance %v, should be %v", n.Key, n.Extra, Balance(skew))
	}

	height = hl
	if hr > hl {
		height = hr
	}
	return height + 1, cl + cr + 1, nil
}
