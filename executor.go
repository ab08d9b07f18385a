// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"context"
	"time"
)

// Scheduling bridge: the worker message seam, the delayed-delivery relay,
// and delayed execution of callback chains.

// Worker is the message-delivery seam of the event loop owning a callback
// chain. Implementations guarantee that every delivered action is
// eventually invoked synchronously on the worker's own goroutine, and that
// delivery order is preserved.
//
// Worker is a capability handle: holding one is the only way to run code on
// the owning goroutine from outside it.
type Worker interface {
	Deliver(action func())
}

// Executor pairs the async context needed to observe externally-driven
// completions with the owning worker, the target of relayed actions.
// One executor per worker; the value is immutable.
//
// A nil Relay selects the process-wide runtime timer relay.
type Executor struct {
	Context context.Context
	Worker  Worker
	Relay   Relay
}

// NewExecutor creates an executor for the given worker using the runtime
// timer relay.
func NewExecutor(ctx context.Context, w Worker) Executor {
	return Executor{Context: ctx, Worker: w, Relay: TimerRelay{}}
}

func (ex Executor) relay() Relay {
	if ex.Relay != nil {
		return ex.Relay
	}
	return TimerRelay{}
}

// Relay accepts a delayed action and redelivers it to the target worker as
// a plain run-now message once the delay has elapsed. A relay performs only
// the timing: it never executes the action itself, so captured chain state
// is still mutated only on the owning worker.
type Relay interface {
	RunAfter(delay time.Duration, to Worker, action func())
}

// TimerRelay relays delayed actions through the runtime timer facility.
// The timer goroutine only redelivers; non-positive delays are delivered
// immediately.
type TimerRelay struct{}

// RunAfter implements Relay.
func (TimerRelay) RunAfter(delay time.Duration, to Worker, action func()) {
	if delay <= 0 {
		to.Deliver(action)
		return
	}
	time.AfterFunc(delay, func() {
		to.Deliver(action)
	})
}

// Schedule returns a callback that runs c on the executor's worker no
// sooner than delay after the returned trigger fires.
//
// The trigger does not run c in place: it sends the wrapped execution to
// the worker, directly for non-positive delays and via the executor's relay
// otherwise, so the chain and its continuation always run on the owning
// worker. Defects escaping the delivered execution surface in the worker
// loop as [*ExecutionError] panics.
func Schedule[T any](delay time.Duration, c Callback[T], ex Executor) Callback[T] {
	return func(k func(Outcome[T])) {
		action := func() {
			defer rewrapDefect()
			c(k)
		}
		if delay <= 0 {
			ex.Worker.Deliver(action)
			return
		}
		ex.relay().RunAfter(delay, ex.Worker, action)
	}
}
