package coprod

import (
	"errors"
	"fmt"
)

// ErrUninhabited is the panic value of code paths that received a value of an
// uninhabited type. Reaching it means a Cons was built by hand in an invalid
// state.
var ErrUninhabited = errors.New("coprod: uninhabited value reached")

// Nil terminates the alternatives of a coproduct. It has no implementations,
// so no value of it is ever produced; it is only a type-level placeholder.
type Nil interface {
	uninhabited()
}

// Absurd discharges a Nil. It never returns.
func Absurd[T any](Nil) T {
	panic(ErrUninhabited)
}

// Cons is the union of T and the alternatives in R. Exactly one branch is
// live.
type Cons[T, R any] struct {
	here  bool
	value T
	rest  R
}

// Value builds a coproduct whose live alternative is the head.
func Value[R, T any](v T) Cons[T, R] {
	return Cons[T, R]{here: true, value: v}
}

// Rest builds a coproduct whose live alternative is somewhere in r.
func Rest[T, R any](r R) Cons[T, R] {
	return Cons[T, R]{rest: r}
}

// Value returns the head alternative if it is the live one.
func (c Cons[T, R]) Value() (T, bool) {
	return c.value, c.here
}

// Rest returns the remaining alternatives if the head is not live.
func (c Cons[T, R]) Rest() (R, bool) {
	return c.rest, !c.here
}

// Live returns the live value, whichever alternative it belongs to.
func (c Cons[T, R]) Live() any {
	if c.here {
		return c.value
	}

	if inner, ok := any(c.rest).(interface{ Live() any }); ok {
		return inner.Live()
	}

	panic(ErrUninhabited)
}

// String formats the live value.
func (c Cons[T, R]) String() string {
	return fmt.Sprint(c.Live())
}
