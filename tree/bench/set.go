// Package bench times the same random workload against the trees in
// this module and against a few third-party ordered containers.
//
// A workload mirrors a plain driver program: insert n random keys in
// [1, n], look n random keys up, delete n random keys, then clear
// whatever is left. Keys repeat, so not every insert adds a key and
// not every delete removes one.
package bench

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is the part of an ordered set the workload uses.
// Insert of a key already present and Delete of an absent key must be
// harmless.
type Set interface {
	Insert(k int) error
	Contains(k int) bool
	Delete(k int)
	Len() int
	Clear()
}

// Checker is implemented by sets that can verify their own invariants.
type Checker interface {
	Check() error
}

// Rebuilder is implemented by sets that want a one-off rebalance after
// the insert phase. The rebuild is timed as its own phase.
type Rebuilder interface {
	Rebuild()
}

// Dotter is implemented by sets that can export their shape.
type Dotter interface {
	WriteDOT(w io.Writer) error
}

// ErrUnknownImpl is returned for an implementation name that isn't
// registered.
var ErrUnknownImpl = errors.New("unknown implementation")

var registry = map[string]func() Set{}

func register(name string, f func() Set) {
	if _, ok := registry[name]; ok {
		panic("duplicate implementation " + name)
	}
	registry[name] = f
}

// Impls returns the registered implementation names, sorted.
func Impls() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// NewSet returns a fresh, empty set of the named implementation.
func NewSet(name string) (Set, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownImpl, name)
	}
	return f(), nil
}
