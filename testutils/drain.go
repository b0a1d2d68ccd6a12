// Package testutils holds assertions shared by channel-heavy tests.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. It waits up to timeout for each element and for
// the final close, so it suits channels fed by a
// goroutine that is still running.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining (blocking): expecting %v", data)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	reset := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(timeout)
	}

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out after %v, expecting i=%d %v", timeout, i, datum)
			return
		}
		reset()
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel chould be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Errorf("timed out after %v waiting for close", timeout)
	}
}
