// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

// Join and gather combinators.
//
// Combined triggers fire every component independently and complete once
// all components have. Completion state lives in the trigger closure;
// components owned by the same worker complete on that worker, so the
// single-owner contract covers the closure's mutation.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

// Zip joins two callbacks into one producing a pair.
//
// Both arguments fire independently when the combined callback executes.
// The combined outcome is a success pair only if both succeeded; if both
// failed, the left argument's failure is reported.
func Zip[A, B any](a Callback[A], b Callback[B]) Callback[Pair[A, B]] {
	return func(k func(Outcome[Pair[A, B]])) {
		var oa Outcome[A]
		var ob Outcome[B]
		pending := 2
		settle := func() {
			pending--
			if pending > 0 {
				return
			}
			// Left-most failure wins.
			if oa.IsFailure() {
				k(Failure[Pair[A, B]](oa.err))
				return
			}
			if ob.IsFailure() {
				k(Failure[Pair[A, B]](ob.err))
				return
			}
			k(Success(Pair[A, B]{Fst: oa.value, Snd: ob.value}))
		}
		a(func(o Outcome[A]) { oa = o; settle() })
		b(func(o Outcome[B]) { ob = o; settle() })
	}
}

// Zip3 joins three callbacks into one producing a triple.
// The left-most failure wins, in argument order a, b, c.
func Zip3[A, B, C any](a Callback[A], b Callback[B], c Callback[C]) Callback[Triple[A, B, C]] {
	return Map(Zip(Zip(a, b), c), func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{Fst: p.Fst.Fst, Snd: p.Fst.Snd, Trd: p.Snd}
	})
}

// Sequence gathers a list of callbacks into one producing every
// per-element outcome in input order.
//
// Every element fires independently when the combined callback executes.
// Sequence never fails as a whole: element failures are carried in the
// result slice rather than short-circuiting. An empty input completes
// synchronously with an empty slice.
func Sequence[T any](cs []Callback[T]) Callback[[]Outcome[T]] {
	return func(k func(Outcome[[]Outcome[T]])) {
		if len(cs) == 0 {
			k(Success([]Outcome[T]{}))
			return
		}
		results := make([]Outcome[T], len(cs))
		pending := len(cs)
		for i, c := range cs {
			i, c := i, c
			c(func(o Outcome[T]) {
				results[i] = o
				pending--
				if pending == 0 {
					k(Success(results))
				}
			})
		}
	}
}
