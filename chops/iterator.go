// Package chops runs iterators as coroutines: a goroutine walks the
// iterator and hands its items over a channel.
package chops

import "context"

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Collect drains an iterator into a slice.
// A nil iterator yields a nil slice.
func Collect[T any](i Iterator[T]) []T {
	if i == nil {
		return nil
	}
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  context.CancelFunc
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iteration ends for any reason.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It may be called any number of times,
// from any goroutine. If the Items channel is closed, this doesn't
// need to be called.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	var x SomeDataStructure[T]
//	// x.Iterator() returns something that implements Iterator[T]
//	co := CoIterate[T](ctx, x.Iterator())
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when the iteration
// is finished, Stop is called or ctx is done. An item may be dropped
// if Stop races with the send; nothing is sent after Items is closed.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	ctx, cancel := context.WithCancel(ctx)
	co := CoIterator[T]{
		items: out,
		stop:  cancel,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, done <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for {
			// a receiver that keeps up must not see more items after Stop
			select {
			case <-done:
				return
			default:
			}
			if !i.Next() {
				return
			}
			select {
			case out <- i.Item():
			case <-done:
				return
			}
		}
	}(out, ctx.Done(), iterator)

	return co
}
