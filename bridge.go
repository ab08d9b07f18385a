// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"context"
	"sync/atomic"
)

// Bridge between the in-loop Callback world and externally-driven
// concurrent operations.
//
// ToFuture converts a chain's eventual outcome into a handle any goroutine
// may observe. FromFuture converts an external completion, possibly
// signaled on another goroutine, back into a Callback whose continuation
// runs on the owning worker. These two seams are the only entry points for
// true multithreaded concurrency; everything between them stays on one
// worker.

// ToFuture executes the callback chain and returns a future that completes
// with the eventual outcome. It does not block: synchronous chains complete
// the future before returning, bridged chains complete it later.
func ToFuture[T any](c Callback[T]) *Future[T] {
	f := NewFuture[T]()
	c.Execute(func(o Outcome[T]) {
		f.Complete(o)
	})
	return f
}

// FromFuture returns a callback whose trigger subscribes to the future's
// completion. On signal the continuation is not called directly: a run-now
// action carrying the outcome is handed to the executor's worker, so the
// continuation always runs on the owning worker regardless of the
// signaling goroutine.
//
// When the executor carries a cancellable context and it ends before the
// future completes, the continuation instead receives a failure outcome
// carrying the context's cause. Whichever signal arrives first wins; the
// continuation is delivered exactly once per trigger invocation.
func FromFuture[T any](f *Future[T], ex Executor) Callback[T] {
	return func(k func(Outcome[T])) {
		var used atomic.Uintptr
		deliver := func(o Outcome[T]) {
			if used.Add(1) != 1 {
				return
			}
			ex.Worker.Deliver(func() {
				defer rewrapDefect()
				k(o)
			})
		}
		f.OnComplete(deliver)
		if ctx := ex.Context; ctx != nil && ctx.Done() != nil {
			go func() {
				select {
				case <-ctx.Done():
					deliver(Failure[T](context.Cause(ctx)))
				case <-f.Done():
					// Completion path delivers.
				}
			}()
		}
	}
}
