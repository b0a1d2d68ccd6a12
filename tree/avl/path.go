package avl

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// path records a descent: the slot holding each visited node, and
// whether the descent left that node through its left child.
// The arrays are fixed at tree.MaxHeight; a deeper tree cannot exist,
// so running off the end is a bug and panics on the index.
type path[T constraints.Ordered] struct {
	slots [tree.MaxHeight]**tree.Node[T, Balance]
	left  [tree.MaxHeight]bool
	n     int
}

func (p *path[T]) push(slot **tree.Node[T, Balance], left bool) {
	p.slots[p.n] = slot
	p.left[p.n] = left
	p.n++
}

func (p *path[T]) pop() (**tree.Node[T, Balance], bool) {
	p.n--
	slot := p.slots[p.n]
	p.slots[p.n] = nil
	return slot, p.left[p.n]
}

// reset drops any slots left over from an abandoned walk so they don't
// keep nodes reachable.
func (p *path[T]) reset() {
	for i := 0; i < p.n; i++ {
		p.slots[i] = nil
	}
	p.n = 0
}
