// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

// Transformation operations for callbacks.
//
// All transformations are lazy: they return a new Callback whose trigger
// fires the upstream trigger and reshapes the outcome on the way to the
// downstream continuation. No work happens until Execute.
//
// Uniform guarding rule: a panic inside any user-supplied transformation
// becomes a failure outcome delivered to the continuation, never a raised
// panic. The outcome is computed inside the guard and the continuation is
// invoked outside it, so continuation panics stay on the Execute boundary.

// Map applies a pure function to the success value of a callback.
//
// On failure f is skipped and the failure propagates. A panic in f becomes
// a failure outcome.
//
// Allocation note: Map is equivalent to MapTry over the success arm but
// avoids the intermediate outcome closure, making it the preferred choice
// for plain value transformations.
func Map[T, U any](c Callback[T], f func(T) U) Callback[U] {
	return func(k func(Outcome[U])) {
		c(func(o Outcome[T]) {
			k(mapGuarded(o, f))
		})
	}
}

// mapGuarded applies f to the success arm, converting panics to failures.
func mapGuarded[T, U any](o Outcome[T], f func(T) U) (out Outcome[U]) {
	if o.IsFailure() {
		return Failure[U](o.err)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[U](panicError(r))
		}
	}()
	return Success(f(o.value))
}

// FlatMap sequences two callbacks (monadic bind).
//
// On success, f produces the next callback, which is fired with the same
// downstream continuation, with no extra indirection, so its own outcome
// becomes the chain's outcome. On upstream failure f is never invoked.
// A panic in f becomes a failure outcome.
func FlatMap[T, U any](c Callback[T], f func(T) Callback[U]) Callback[U] {
	return func(k func(Outcome[U])) {
		c(func(o Outcome[T]) {
			if o.IsFailure() {
				k(Failure[U](o.err))
				return
			}
			next, failed, ok := flatGuarded(o.value, f)
			if !ok {
				k(failed)
				return
			}
			next(k)
		})
	}
}

// flatGuarded applies f to the success value, converting panics to a
// failure outcome. ok reports whether f returned normally; a nil next from
// a normal return is a caller defect and surfaces at the Execute boundary.
func flatGuarded[T, U any](v T, f func(T) Callback[U]) (next Callback[U], failed Outcome[U], ok bool) {
	defer func() {
		if r := recover(); r != nil {
			next = nil
			failed = Failure[U](panicError(r))
			ok = false
		}
	}()
	return f(v), Outcome[U]{}, true
}

// MapTry applies a general outcome transformation, exposing both the
// success and failure arms to f. It is the basis on which [Recover] and
// [RecoverWith] are built.
//
// A panic in f becomes a failure outcome.
func MapTry[T, U any](c Callback[T], f func(Outcome[T]) Outcome[U]) Callback[U] {
	return func(k func(Outcome[U])) {
		c(func(o Outcome[T]) {
			k(tryGuarded(o, f))
		})
	}
}

// tryGuarded applies f to the outcome, converting panics to failures.
func tryGuarded[T, U any](o Outcome[T], f func(Outcome[T]) Outcome[U]) (out Outcome[U]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[U](panicError(r))
		}
	}()
	return f(o)
}
