// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package callback provides a lazy continuation-passing composition
// primitive for strictly single-threaded, non-blocking execution inside a
// worker/event-loop.
//
// The core type [Callback] represents a not-yet-started deferred
// computation producing an [Outcome]. A Callback is characterized by its
// trigger: a function that, once invoked, eventually calls the given
// continuation exactly once with the outcome, synchronously or later.
// Chains replace deeply nested callback APIs with future-like ergonomics
// under a different concurrency contract: nothing starts until an explicit
// [Callback.Execute], and a chain belongs to exactly one worker.
//
// # Design Philosophy
//
// callback provides:
//   - Lazy composition: construction and transformation perform no work
//   - Single ownership: no locks or shared mutable state between chains
//   - Two explicit bridge seams for everything that crosses goroutines
//
// # Ownership Contract
//
// A Callback is logically owned by one worker goroutine. Composition
// operators assume synchronous, reentrant execution on that goroutine and
// take no data-race protection. Crossing goroutines is legal only at the
// bridge seams, which hand continuations back to the owning worker through
// its message channel:
//
//   - [FromFuture]: externally-driven completion, relayed to the worker
//   - [Schedule]: delayed execution, relayed through a timing facility
//
// # Core Operations
//
// Construction:
//
//   - [FromTrigger]: Create a callback from a raw trigger function
//   - [Completed]: Lift a known outcome, delivered synchronously
//   - [Succeeded], [Failed]: Immediate success/failure specializations
//
// Transformation (lazy, return a new Callback):
//
//   - [Map]: Apply a pure function to the success value
//   - [FlatMap]: Sequence a dependent callback (monadic bind)
//   - [MapTry]: General transform over both outcome arms
//   - [Recover]: Substitute a success value for matched failures
//   - [RecoverWith]: Substitute an asynchronous computation for matched failures
//
// Execution:
//
//   - [Callback.Execute]: Fire the chain with a terminal continuation
//
// # Error Boundary
//
// Two error classes are kept strictly apart. Composition failures (errors
// or panics from any user-supplied transformation, and unmatched failures
// propagating through a chain) always travel as failure outcomes and are
// recoverable via [Recover]/[RecoverWith]; they are never raised out of
// Execute. Defects, meaning a panic in the terminal continuation given to
// Execute or a broken raw trigger, re-raise wrapped as [*ExecutionError],
// so an embedding worker loop can tell caller bugs from business failures.
//
// Match predicates for recovery compose with the errors package:
//
//   - [MatchAny]: every failure
//   - [MatchOf]: errors.Is against target errors
//   - [MatchKind]: errors.As against an error type
//
// # Combinators
//
//   - [Zip], [Zip3]: Join independent callbacks into a tuple; all components
//     fire on execution and the left-most failure wins ties
//   - [Sequence]: Gather a list into per-element outcomes in input order;
//     never fails as a whole
//
// # Bridges
//
// [Future] is the externally-visible single-outcome handle, safe for any
// goroutine:
//
//   - [ToFuture]: Execute a chain and expose its eventual outcome
//   - [FromFuture]: Re-enter the owning worker from an external completion
//   - [Future.Complete], [Future.TryComplete]: One-shot settlement
//     (Complete panics on reuse)
//   - [Future.OnComplete], [Future.Done], [Future.Await]: Observation
//
// [Executor] pairs the async context with the owning [Worker]. [Schedule]
// defers execution through the [Relay], which performs only the timing and
// redelivers a plain run-now message; it never executes actions itself,
// preserving single-owner execution.
//
// # Example
//
//	fetch := callback.FromTrigger(func(k func(callback.Outcome[int])) {
//		k(callback.Success(21))
//	})
//
//	chain := callback.Map(fetch, func(x int) int { return x * 2 })
//
//	chain.Execute(func(o callback.Outcome[int]) {
//		v, _ := o.Get()
//		fmt.Println(v) // 42
//	})
package callback
