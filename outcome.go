// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "fmt"

// Outcome represents the result of a callback computation:
// either success carrying a value of type T, or failure carrying an error.
// Exactly one of the two arms holds. Outcomes are immutable.
type Outcome[T any] struct {
	isSuccess bool
	value     T
	err       error
}

// Success creates a success outcome carrying v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{isSuccess: true, value: v}
}

// Failure creates a failure outcome carrying err.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{isSuccess: false, err: err}
}

// IsSuccess returns true if this is a success outcome.
func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsFailure returns true if this is a failure outcome.
func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// Get returns the success value and true, or zero and false.
func (o Outcome[T]) Get() (T, bool) {
	if o.isSuccess {
		return o.value, true
	}
	var zero T
	return zero, false
}

// Err returns the failure error, or nil for a success outcome.
func (o Outcome[T]) Err() error {
	return o.err
}

// String implements fmt.Stringer for debug output.
func (o Outcome[T]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("success(%v)", o.value)
	}
	return fmt.Sprintf("failure(%v)", o.err)
}

// MatchOutcome pattern matches on the outcome, calling onSuccess or onFailure.
func MatchOutcome[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func(error) R) R {
	if o.isSuccess {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// MapOutcome applies a function to the success value.
// Failures pass through unchanged.
func MapOutcome[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if o.isSuccess {
		return Success(f(o.value))
	}
	return Failure[U](o.err)
}

// FlatMapOutcome sequences two outcome computations.
// Failures pass through unchanged without invoking f.
func FlatMapOutcome[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if o.isSuccess {
		return f(o.value)
	}
	return Failure[U](o.err)
}
