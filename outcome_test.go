// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/callback"
)

var errBoom = errors.New("boom")

func TestSuccessGet(t *testing.T) {
	o := callback.Success(42)
	if !o.IsSuccess() {
		t.Fatal("IsSuccess() = false, want true")
	}
	if o.IsFailure() {
		t.Fatal("IsFailure() = true, want false")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("Get() = (%d, %v), want (42, true)", v, ok)
	}
	if err := o.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
}

func TestFailureErr(t *testing.T) {
	o := callback.Failure[int](errBoom)
	if o.IsSuccess() {
		t.Fatal("IsSuccess() = true, want false")
	}
	if !o.IsFailure() {
		t.Fatal("IsFailure() = false, want true")
	}
	v, ok := o.Get()
	if ok || v != 0 {
		t.Fatalf("Get() = (%d, %v), want (0, false)", v, ok)
	}
	if err := o.Err(); !errors.Is(err, errBoom) {
		t.Fatalf("Err() = %v, want %v", err, errBoom)
	}
}

func TestMatchOutcome(t *testing.T) {
	got := callback.MatchOutcome(callback.Success(7),
		func(v int) string { return "ok" },
		func(err error) string { return "err" },
	)
	if got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}

	got = callback.MatchOutcome(callback.Failure[int](errBoom),
		func(v int) string { return "ok" },
		func(err error) string { return "err" },
	)
	if got != "err" {
		t.Fatalf("got %q, want %q", got, "err")
	}
}

func TestMapOutcome(t *testing.T) {
	o := callback.MapOutcome(callback.Success(10), func(x int) int { return x * 3 })
	v, _ := o.Get()
	if v != 30 {
		t.Fatalf("got %d, want 30", v)
	}

	o = callback.MapOutcome(callback.Failure[int](errBoom), func(x int) int {
		t.Fatal("f invoked on failure")
		return 0
	})
	if !errors.Is(o.Err(), errBoom) {
		t.Fatalf("Err() = %v, want %v", o.Err(), errBoom)
	}
}

func TestFlatMapOutcome(t *testing.T) {
	o := callback.FlatMapOutcome(callback.Success(5), func(x int) callback.Outcome[int] {
		return callback.Success(x + 1)
	})
	v, _ := o.Get()
	if v != 6 {
		t.Fatalf("got %d, want 6", v)
	}

	o = callback.FlatMapOutcome(callback.Success(5), func(x int) callback.Outcome[int] {
		return callback.Failure[int](errBoom)
	})
	if !errors.Is(o.Err(), errBoom) {
		t.Fatalf("Err() = %v, want %v", o.Err(), errBoom)
	}

	o = callback.FlatMapOutcome(callback.Failure[int](errBoom), func(x int) callback.Outcome[int] {
		t.Fatal("f invoked on failure")
		return callback.Success(0)
	})
	if !errors.Is(o.Err(), errBoom) {
		t.Fatalf("Err() = %v, want %v", o.Err(), errBoom)
	}
}

func TestOutcomeString(t *testing.T) {
	if got := callback.Success(1).String(); got != "success(1)" {
		t.Fatalf("got %q, want %q", got, "success(1)")
	}
	if got := callback.Failure[int](errBoom).String(); got != "failure(boom)" {
		t.Fatalf("got %q, want %q", got, "failure(boom)")
	}
}
