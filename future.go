// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"context"
	"sync"
)

// Future is an externally-completable, single-outcome handle, safe to
// complete and observe from any goroutine. It is the external face of a
// callback chain: [ToFuture] produces one, [FromFuture] consumes one.
//
// A Future completes at most once. Complete panics on reuse; TryComplete
// is the non-panicking variant.
type Future[T any] struct {
	mu        sync.Mutex
	completed bool
	outcome   Outcome[T]
	observers []func(Outcome[T])
	done      chan struct{}
}

// NewFuture creates an incomplete future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete settles the future with the given outcome and notifies all
// registered observers on the calling goroutine.
// Panics if the future has already completed.
func (f *Future[T]) Complete(o Outcome[T]) {
	if !f.TryComplete(o) {
		panic("callback: future completed twice")
	}
}

// TryComplete attempts to settle the future.
// Returns true on success, or false if the future has already completed.
func (f *Future[T]) TryComplete(o Outcome[T]) bool {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return false
	}
	f.completed = true
	f.outcome = o
	observers := f.observers
	f.observers = nil
	close(f.done)
	f.mu.Unlock()
	for _, observe := range observers {
		observe(o)
	}
	return true
}

// OnComplete registers an observer invoked exactly once with the future's
// outcome: on the completing goroutine if the future is still pending, or
// synchronously on the calling goroutine if it has already completed.
func (f *Future[T]) OnComplete(observe func(Outcome[T])) {
	f.mu.Lock()
	if !f.completed {
		f.observers = append(f.observers, observe)
		f.mu.Unlock()
		return
	}
	o := f.outcome
	f.mu.Unlock()
	observe(o)
}

// Done returns a channel closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future completes or ctx ends, whichever comes
// first. A context ending first yields a failure outcome carrying the
// context's cause; the future itself remains pending and may still
// complete later.
func (f *Future[T]) Await(ctx context.Context) Outcome[T] {
	select {
	case <-f.done:
		f.mu.Lock()
		o := f.outcome
		f.mu.Unlock()
		return o
	case <-ctx.Done():
		return Failure[T](context.Cause(ctx))
	}
}
