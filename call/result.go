package call

import "typelist/coprod"

// Result is the outcome of a fallible call: a value of T or an error of E.
// E is a concrete type, usually a coprod union, never a catch-all error.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok builds a successful Result.
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err builds a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// Get returns the value, the error, and whether the call succeeded.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, !r.failed
}

// IsOk reports whether the call succeeded.
func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

// LiftErr widens the error of r into the larger union D.
func LiftErr[T, E, D any](r Result[T, E], e coprod.Embedding[E, D]) Result[T, D] {
	if r.failed {
		return Err[T](coprod.IntoSuperset(r.err, e))
	}

	return Ok[D](r.value)
}
