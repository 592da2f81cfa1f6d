package traverse

import (
	"typelist/call"
	"typelist/coprod"
	"typelist/hlist"
)

// AnyPlan tests the elements of L with the callable F.
type AnyPlan[F, L any] struct {
	run    func(F, L) bool
	negate func() AnyPlan[F, L]
}

// Negate returns the plan that tests the negated predicate on every element.
func (p AnyPlan[F, L]) Negate() AnyPlan[F, L] {
	return p.negate()
}

// AnyNil is the plan of the empty list. It never matches.
func AnyNil[F any]() AnyPlan[F, hlist.Nil] {
	p := AnyPlan[F, hlist.Nil]{
		run: func(F, hlist.Nil) bool { return false },
	}
	p.negate = func() AnyPlan[F, hlist.Nil] { return p }

	return p
}

// AnyLast is the plan of a single remaining element.
func AnyLast[F, T any](t call.OnceTag[F, T, bool]) AnyPlan[F, hlist.Cons[T, hlist.Nil]] {
	return AnyPlan[F, hlist.Cons[T, hlist.Nil]]{
		run: func(f F, l hlist.Cons[T, hlist.Nil]) bool {
			return t.CallOnce(f, l.Value)
		},
		negate: func() AnyPlan[F, hlist.Cons[T, hlist.Nil]] {
			return AnyLast(call.NotOnce(t))
		},
	}
}

// AnyCons tests the head with t and, if it does not match, the rest with
// rest.
func AnyCons[F, T, R any](t call.Tag[F, T, bool], rest AnyPlan[F, R]) AnyPlan[F, hlist.Cons[T, R]] {
	return AnyPlan[F, hlist.Cons[T, R]]{
		run: func(f F, l hlist.Cons[T, R]) bool {
			if t.CallMut(&f, l.Value) {
				return true
			}

			return rest.run(f, l.Rest)
		},
		negate: func() AnyPlan[F, hlist.Cons[T, R]] {
			return AnyCons(call.Not(t), rest.Negate())
		},
	}
}

// Any reports whether f matches at least one element of l. It stops at the
// first match, left to right.
func Any[F, L any](l L, f F, p AnyPlan[F, L]) bool {
	return p.run(f, l)
}

// All reports whether f matches every element of l. It is the negation of
// Any over the negated predicate, so it stops at the first mismatch.
func All[F, L any](l L, f F, p AnyPlan[F, L]) bool {
	return !p.Negate().run(f, l)
}

// CoAnyPlan tests the live alternative of C with the callable F.
type CoAnyPlan[F, C any] struct {
	run    func(F, C) bool
	negate func() CoAnyPlan[F, C]
}

// Negate returns the plan that tests the negated predicate.
func (p CoAnyPlan[F, C]) Negate() CoAnyPlan[F, C] {
	return p.negate()
}

// CoAnyNil is the plan of the empty coproduct. It is never run.
func CoAnyNil[F any]() CoAnyPlan[F, coprod.Nil] {
	p := CoAnyPlan[F, coprod.Nil]{
		run: func(_ F, c coprod.Nil) bool { return coprod.Absurd[bool](c) },
	}
	p.negate = func() CoAnyPlan[F, coprod.Nil] { return p }

	return p
}

// CoAnyCons tests the head alternative with t when it is live and otherwise
// hands the rest to rest. Only one alternative is ever live, so t is used at
// most once.
func CoAnyCons[F, T, R any](t call.OnceTag[F, T, bool], rest CoAnyPlan[F, R]) CoAnyPlan[F, coprod.Cons[T, R]] {
	return CoAnyPlan[F, coprod.Cons[T, R]]{
		run: func(f F, c coprod.Cons[T, R]) bool {
			if v, ok := c.Value(); ok {
				return t.CallOnce(f, v)
			}

			r, _ := c.Rest()

			return rest.run(f, r)
		},
		negate: func() CoAnyPlan[F, coprod.Cons[T, R]] {
			return CoAnyCons(call.NotOnce(t), rest.Negate())
		},
	}
}

// CoAny reports whether f matches the live alternative of c.
func CoAny[F, C any](c C, f F, p CoAnyPlan[F, C]) bool {
	return p.run(f, c)
}

// CoAll is the negation of CoAny over the negated predicate. With a single
// live alternative it agrees with CoAny.
func CoAll[F, C any](c C, f F, p CoAnyPlan[F, C]) bool {
	return !p.Negate().run(f, c)
}
