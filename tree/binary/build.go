package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int]{}
	for _, k := range rd.Perm(num) {
		tr.Insert(k)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes by
// shuffling and inserting until the result happens to be balanced.
// Node keys are in the range [0, num).
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
//
// Past a few dozen nodes this can take practically forever, so it
// gives up with ctx's error when ctx is done. Balance gets the same
// shape of result directly.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if err := ctx.Err(); err != nil {
			return nil, attempts, fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}
	}

	return tr, attempts, nil
}

// FromTraversals rebuilds a binary tree from its pre-order and
// in-order traversals. The in-order traversal must be strictly
// ascending, so the keys are distinct and the result is a search tree.
// It takes O(n) time, plus O(n) space for an index of the in-order
// traversal.
func FromTraversals[S ~[]T, T constraints.Ordered](pre, in S) (*Tree[T], error) {
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	pos := make(map[T]int, len(in))
	for i, v := range in {
		if i > 0 && !(in[i-1] < v) {
			return nil, fmt.Errorf("in-order traversal is not ascending at %v", v)
		}
		pos[v] = i
	}

	b := traversalBuilder[T]{pre: pre, pos: pos}
	root, err := b.build(0, len(in))
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root, count: len(in)}, nil
}

type traversalBuilder[T constraints.Ordered] struct {
	pre  []T
	pos  map[T]int
	next int // index into pre of the next subtree root
}

// build returns the subtree whose keys are in[lo:hi].
// The next key in pre-order is always the root of that subtree.
func (b *traversalBuilder[T]) build(lo, hi int) (*tree.Node[T, struct{}], error) {
	if lo == hi {
		return nil, nil
	}

	k := b.pre[b.next]
	b.next++

	i, ok := b.pos[k]
	if !ok {
		return nil, fmt.Errorf("pre-order key %v not found in in-order traversal", k)
	}
	if i < lo || i >= hi {
		return nil, fmt.Errorf("pre-order key %v is out of place", k)
	}

	n := tree.BasicNodeOf(k)
	var err error
	if n.Left, err = b.build(lo, i); err != nil {
		return nil, err
	}
	if n.Right, err = b.build(i+1, hi); err != nil {
		return nil, err
	}
	return n, nil
}
