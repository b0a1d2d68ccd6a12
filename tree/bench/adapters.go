package bench

import (
	"io"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/avl"
	"go.lepak.sg/trees/tree/binary"
)

func init() {
	register("avl", func() Set {
		return &avlSet{avl.New[int]()}
	})
	register("avl-rec", func() Set {
		return &avlSet{avl.New(avl.WithRecursion[int]())}
	})
	register("avl-pool", func() Set {
		return &avlSet{avl.New(avl.WithAllocator[int](tree.NewPool[int, avl.Balance](0)))}
	})
	register("bst", func() Set {
		return &bstSet{}
	})
	register("bst-balanced", func() Set {
		return &bstSet{rebuild: true}
	})
	register("gods-avl", func() Set {
		return &godsAVLSet{avltree.NewWithIntComparator()}
	})
	register("gods-rb", func() Set {
		return &godsRBSet{redblacktree.NewWithIntComparator()}
	})
	register("btree", func() Set {
		return &btreeSet{btree.NewOrderedG[int](btreeDegree)}
	})
	register("llrb", func() Set {
		return &llrbSet{llrb.New()}
	})
}

type avlSet struct {
	t *avl.Tree[int]
}

func (s *avlSet) Insert(k int) error {
	_, err := s.t.Insert(k)
	return err
}

func (s *avlSet) Contains(k int) bool        { return s.t.Contains(k) }
func (s *avlSet) Delete(k int)               { s.t.Delete(k) }
func (s *avlSet) Len() int                   { return s.t.Len() }
func (s *avlSet) Clear()                     { s.t.Clear() }
func (s *avlSet) Check() error               { return s.t.Check() }
func (s *avlSet) WriteDOT(w io.Writer) error { return s.t.WriteDOT(w) }
func (s *avlSet) String() string             { return s.t.String() }

type bstSet struct {
	t       binary.Tree[int]
	rebuild bool
}

func (s *bstSet) Insert(k int) error {
	s.t.Insert(k)
	return nil
}

func (s *bstSet) Contains(k int) bool        { return s.t.Contains(k) }
func (s *bstSet) Delete(k int)               { s.t.Delete(k) }
func (s *bstSet) Len() int                   { return s.t.Len() }
func (s *bstSet) Clear()                     { s.t.Clear() }
func (s *bstSet) Check() error               { return s.t.Check() }
func (s *bstSet) WriteDOT(w io.Writer) error { return s.t.WriteDOT(w) }
func (s *bstSet) String() string             { return s.t.String() }

func (s *bstSet) Rebuild() {
	if s.rebuild {
		s.t.Balance()
	}
}

type godsAVLSet struct {
	t *avltree.Tree
}

func (s *godsAVLSet) Insert(k int) error {
	s.t.Put(k, nil)
	return nil
}

func (s *godsAVLSet) Contains(k int) bool {
	_, ok := s.t.Get(k)
	return ok
}

func (s *godsAVLSet) Delete(k int) { s.t.Remove(k) }
func (s *godsAVLSet) Len() int     { return s.t.Size() }
func (s *godsAVLSet) Clear()       { s.t.Clear() }

type godsRBSet struct {
	t *redblacktree.Tree
}

func (s *godsRBSet) Insert(k int) error {
	s.t.Put(k, nil)
	return nil
}

func (s *godsRBSet) Contains(k int) bool {
	_, ok := s.t.Get(k)
	return ok
}

func (s *godsRBSet) Delete(k int) { s.t.Remove(k) }
func (s *godsRBSet) Len() int     { return s.t.Size() }
func (s *godsRBSet) Clear()       { s.t.Clear() }

// btreeDegree is what google/btree's own benchmarks use.
const btreeDegree = 32

type btreeSet struct {
	t *btree.BTreeG[int]
}

func (s *btreeSet) Insert(k int) error {
	s.t.ReplaceOrInsert(k)
	return nil
}

func (s *btreeSet) Contains(k int) bool { return s.t.Has(k) }
func (s *btreeSet) Delete(k int)        { s.t.Delete(k) }
func (s *btreeSet) Len() int            { return s.t.Len() }
func (s *btreeSet) Clear()              { s.t.Clear(false) }

type llrbSet struct {
	t *llrb.LLRB
}

func (s *llrbSet) Insert(k int) error {
	s.t.ReplaceOrInsert(llrb.Int(k))
	return nil
}

func (s *llrbSet) Contains(k int) bool { return s.t.Has(llrb.Int(k)) }
func (s *llrbSet) Delete(k int)        { s.t.Delete(llrb.Int(k)) }
func (s *llrbSet) Len() int            { return s.t.Len() }

// Clear drops the whole tree; LLRB has no bulk delete.
func (s *llrbSet) Clear() { s.t = llrb.New() }
