package tree

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// ErrExhausted is returned by an Allocator that cannot hand out
// another node.
var ErrExhausted = errors.New("tree: node allocator exhausted")

// Allocator creates and reclaims nodes for a tree.
// New must return a leaf: no children, the given key and extra data.
// Free is called exactly once for every node a tree drops, after the
// tree has stopped referring to it.
type Allocator[T constraints.Ordered, X any] interface {
	New(k T, x X) (*Node[T, X], error)
	Free(n *Node[T, X])
}

// Heap allocates straight from the Go heap and never fails.
// Free is a no-op; the garbage collector does the work.
type Heap[T constraints.Ordered, X any] struct{}

func (Heap[T, X]) New(k T, x X) (*Node[T, X], error) {
	return NodeOf(k, x), nil
}

func (Heap[T, X]) Free(*Node[T, X]) {}

// Pool reuses freed nodes and can cap the number of live nodes.
// A Pool is safe for concurrent use, so several trees may share one,
// although each tree on its own is still not safe for concurrent use.
type Pool[T constraints.Ordered, X any] struct {
	mu    sync.Mutex
	free  *Node[T, X] // free list, linked through Right
	limit int
	live  int // handed out and not yet freed
	idle  int // sitting on the free list
	total int // ever created
}

// NewPool returns a Pool. If limit > 0, New fails with ErrExhausted
// once limit nodes are live at the same time.
func NewPool[T constraints.Ordered, X any](limit int) *Pool[T, X] {
	return &Pool[T, X]{
		limit: limit,
	}
}

func (p *Pool[T, X]) New(k T, x X) (*Node[T, X], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limit > 0 && p.live >= p.limit {
		return nil, ErrExhausted
	}

	n := p.free
	if n == nil {
		if p.idle != 0 {
			panic("pool corrupt")
		}
		n = new(Node[T, X])
		p.total++
	} else {
		p.free = n.Right
		p.idle--
	}

	*n = Node[T, X]{
		Key:   k,
		Extra: x,
	}
	p.live++
	return n, nil
}

func (p *Pool[T, X]) Free(n *Node[T, X]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// drop the key and extra data so the pool doesn't keep them alive
	*n = Node[T, X]{
		Right: p.free,
	}
	p.free = n
	p.live--
	p.idle++
}

// Live returns the number of nodes currently handed out.
func (p *Pool[_, _]) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Idle returns the number of nodes waiting on the free list.
func (p *Pool[_, _]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle
}

// Total returns the number of nodes the pool has ever created.
func (p *Pool[_, _]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}
