// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "errors"

// Error recovery for callback chains.
//
// Recovery is predicate-guarded: a match predicate decides whether a
// failure is handled, and a handler produces the substitute. Unmatched
// failures pass through unchanged. Chaining multiple Recover/RecoverWith
// calls yields an ordered first-match-wins handler list.

// Recover substitutes a success value for failures matched by match.
//
// On a matched failure, handler produces the replacement value. Unmatched
// failures and successes pass through unchanged. A panic in match or
// handler becomes a new failure outcome.
func Recover[T any](c Callback[T], match func(error) bool, handler func(error) T) Callback[T] {
	return MapTry(c, func(o Outcome[T]) Outcome[T] {
		if o.IsSuccess() || !match(o.err) {
			return o
		}
		return Success(handler(o.err))
	})
}

// RecoverWith substitutes an asynchronous computation for failures matched
// by match.
//
// On a matched failure, handler produces a callback which is fired with the
// same downstream continuation; its own outcome, success or failure,
// becomes the chain's outcome. Unmatched failures and successes pass
// through unchanged. A panic in match or handler becomes a new failure
// outcome.
func RecoverWith[T any](c Callback[T], match func(error) bool, handler func(error) Callback[T]) Callback[T] {
	return func(k func(Outcome[T])) {
		c(func(o Outcome[T]) {
			if o.IsSuccess() {
				k(o)
				return
			}
			next, passed, substitute := recoverGuarded(o, match, handler)
			if !substitute {
				k(passed)
				return
			}
			next(k)
		})
	}
}

// recoverGuarded evaluates match and handler against a failure outcome,
// converting panics to failures. substitute reports whether handler
// produced a replacement callback; otherwise passed carries the outcome to
// deliver.
func recoverGuarded[T any](o Outcome[T], match func(error) bool, handler func(error) Callback[T]) (next Callback[T], passed Outcome[T], substitute bool) {
	defer func() {
		if r := recover(); r != nil {
			next = nil
			passed = Failure[T](panicError(r))
			substitute = false
		}
	}()
	if !match(o.err) {
		return nil, o, false
	}
	return handler(o.err), Outcome[T]{}, true
}

// MatchAny matches every error. Recover(c, MatchAny, h) handles all
// failures unconditionally.
func MatchAny(error) bool { return true }

// MatchOf returns a predicate matching errors for which errors.Is reports
// any of the given targets.
func MatchOf(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// MatchKind returns a predicate matching errors assignable to the error
// type E via errors.As.
func MatchKind[E error]() func(error) bool {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}
