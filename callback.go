// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "fmt"

// Callback represents a lazy, single-use deferred computation producing an
// [Outcome] of type T. The value is its trigger: a function that, once
// invoked, eventually calls the given continuation exactly once with an
// outcome, synchronously or later.
//
// Constructing or transforming a Callback performs no work; only
// [Callback.Execute] fires the trigger. A Callback is logically owned by one
// worker goroutine; sharing across goroutines without the bridge seams
// ([FromFuture], [Schedule]) is unsafe by design.
type Callback[T any] func(k func(Outcome[T]))

// FromTrigger creates a callback from a raw trigger function.
// This is the primitive constructor for computations that need direct
// access to the continuation.
//
// The trigger must call its continuation exactly once per invocation.
func FromTrigger[T any](trigger func(k func(Outcome[T]))) Callback[T] {
	return Callback[T](trigger)
}

// Completed lifts an already-known outcome into a callback.
// The resulting trigger delivers the outcome to its continuation
// synchronously.
func Completed[T any](o Outcome[T]) Callback[T] {
	return func(k func(Outcome[T])) {
		k(o)
	}
}

// Succeeded lifts a pure value into an immediately-successful callback.
func Succeeded[T any](v T) Callback[T] {
	return Completed(Success(v))
}

// Failed lifts an error into an immediately-failed callback.
func Failed[T any](err error) Callback[T] {
	return Completed(Failure[T](err))
}

// discard is the default terminal continuation for Execute.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func discard[T any](Outcome[T]) {}

// Execute fires the callback chain with onComplete as the terminal
// continuation. A nil onComplete discards the outcome.
//
// Failures arising anywhere in the composed chain arrive as failure
// outcomes; Execute itself panics only when a defect escapes trigger
// invocation (a panicking terminal handler, or a broken raw trigger), and
// then the panic value is an [*ExecutionError] wrapping the original cause.
// This is the engine's only re-raise path.
//
// Executing the same value again starts an independent run; whether that is
// safe depends entirely on the underlying trigger.
func (c Callback[T]) Execute(onComplete func(Outcome[T])) {
	if onComplete == nil {
		onComplete = discard[T]
	}
	defer rewrapDefect()
	c(onComplete)
}

// ExecutionError wraps a defect that escaped trigger invocation: a panic
// from the terminal continuation given to [Callback.Execute], or an
// otherwise uncaught panic in a raw trigger. It marks a caller bug, distinct
// from ordinary failure outcomes, so an embedding worker loop can tell the
// two apart.
type ExecutionError struct {
	Cause any
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("callback: execution defect: %v", e.Cause)
}

// Unwrap returns the cause when it is an error, enabling errors.Is/As.
func (e *ExecutionError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// rewrapDefect re-raises an in-flight panic wrapped as *ExecutionError.
// Already-wrapped defects from nested Execute calls pass through unchanged.
func rewrapDefect() {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(*ExecutionError); ok {
		panic(r)
	}
	panic(&ExecutionError{Cause: r})
}

// panicError converts a recovered panic value from a user-supplied
// transformation into the error carried by the resulting failure outcome.
// Error payloads are kept as-is so errors.Is/As matching still works
// through [Recover].
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("callback: transformation panic: %v", r)
}
