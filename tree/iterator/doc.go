// Package iterator provides tree iterators for use
// by tree implementations.
//
// The iterators keep their own stack of ancestors instead of relying
// on parent pointers, so they work on any tree built from tree.Node.
package iterator

import (
	"go.lepak.sg/trees/chops"
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called, and
// Next keeps returning false until Reset is called.
// Item may be called any number of times if the
// last call to Next returned true.
// Reset rewinds the iterator to before the first item.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
	Reset()
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
