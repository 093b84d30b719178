package testing

import (
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// True asserts that v is true.
func True(t testing.TB, v bool, msg string) {
	t.Helper()

	if !v {
		t.Fatalf("expected true: %s", msg)
	}
}

// Nil asserts that a is nil.
func Nil(t testing.TB, a any) {
	t.Helper()

	if !isNil(a) {
		t.Fatalf("expected '%v' to be nil", a)
	}
}

// NotNil asserts that a is not nil.
func NotNil(t testing.TB, a any) {
	t.Helper()

	if isNil(a) {
		t.Fatalf("expected non-nil value")
	}
}

// Panics asserts that f panics.
func Panics(t testing.TB, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	f()
}

func isNil(a any) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
