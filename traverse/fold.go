package traverse

import (
	"typelist/call"
	"typelist/coprod"
	"typelist/hlist"
	"typelist/tuple"
)

// TryFoldPlan folds the elements of L, starting from an accumulator of type
// A, into O. A failing step stops the fold with an error of the closed union
// E, which has one alternative per step in list order.
type TryFoldPlan[F, A, L, O, E any] struct {
	run func(F, A, L) (O, E, bool)
}

// TryFoldNil is the plan of the empty list: the accumulator is the result.
func TryFoldNil[F, A any]() TryFoldPlan[F, A, hlist.Nil, A, coprod.Nil] {
	return TryFoldPlan[F, A, hlist.Nil, A, coprod.Nil]{
		run: tryFoldNil[F, A, coprod.Nil],
	}
}

// TryFoldLast is the plan of a single remaining element.
func TryFoldLast[F, A, T, O, E any](
	t call.OnceTag[F, tuple.T2[A, T], call.Result[O, E]],
) TryFoldPlan[F, A, hlist.Cons[T, hlist.Nil], O, coprod.Cons[E, coprod.Nil]] {
	return TryFoldPlan[F, A, hlist.Cons[T, hlist.Nil], O, coprod.Cons[E, coprod.Nil]]{
		run: tryFoldLast(t, coprod.Value[coprod.Nil, E]),
	}
}

// TryFoldCons folds the head with t and threads the new accumulator into
// rest.
func TryFoldCons[F, A, T, B, R, O, E, ER any](
	t call.Tag[F, tuple.T2[A, T], call.Result[B, E]],
	rest TryFoldPlan[F, B, R, O, ER],
) TryFoldPlan[F, A, hlist.Cons[T, R], O, coprod.Cons[E, ER]] {
	return TryFoldPlan[F, A, hlist.Cons[T, R], O, coprod.Cons[E, ER]]{
		run: tryFoldCons(t, rest.run, coprod.Value[ER, E], coprod.Rest[E, ER]),
	}
}

// TryFold folds l left to right. On failure it returns the error of the first
// failing step, tagged with that step's position, and ok == false.
func TryFold[F, A, L, O, E any](l L, acc A, f F, p TryFoldPlan[F, A, L, O, E]) (out O, err E, ok bool) {
	return p.run(f, acc, l)
}

func tryFoldNil[F, A, U any](_ F, acc A, _ hlist.Nil) (A, U, bool) {
	var none U
	return acc, none, true
}

func tryFoldLast[F, A, T, O, E, U any](
	t call.OnceTag[F, tuple.T2[A, T], call.Result[O, E]],
	here func(E) U,
) func(F, A, hlist.Cons[T, hlist.Nil]) (O, U, bool) {
	return func(f F, acc A, l hlist.Cons[T, hlist.Nil]) (O, U, bool) {
		out, err, ok := t.CallOnce(f, tuple.Of2(acc, l.Value)).Get()
		if !ok {
			var zero O
			return zero, here(err), false
		}

		var none U
		return out, none, true
	}
}

func tryFoldCons[F, A, T, B, R, O, E, ER, U any](
	t call.Tag[F, tuple.T2[A, T], call.Result[B, E]],
	rest func(F, B, R) (O, ER, bool),
	here func(E) U,
	later func(ER) U,
) func(F, A, hlist.Cons[T, R]) (O, U, bool) {
	return func(f F, acc A, l hlist.Cons[T, R]) (O, U, bool) {
		next, err, ok := t.CallMut(&f, tuple.Of2(acc, l.Value)).Get()
		if !ok {
			var zero O
			return zero, here(err), false
		}

		out, restErr, ok := rest(f, next, l.Rest)
		if !ok {
			return out, later(restErr), false
		}

		var none U
		return out, none, true
	}
}

// FoldPlan folds the elements of L, starting from an accumulator of type A,
// into O. It is a TryFoldPlan whose steps cannot fail.
type FoldPlan[F, A, L, O any] struct {
	run func(F, A, L) (O, coprod.Nil, bool)
}

// FoldNil is the plan of the empty list.
func FoldNil[F, A any]() FoldPlan[F, A, hlist.Nil, A] {
	return FoldPlan[F, A, hlist.Nil, A]{
		run: tryFoldNil[F, A, coprod.Nil],
	}
}

// FoldLast is the plan of a single remaining element.
func FoldLast[F, A, T, O any](t call.OnceTag[F, tuple.T2[A, T], O]) FoldPlan[F, A, hlist.Cons[T, hlist.Nil], O] {
	return FoldPlan[F, A, hlist.Cons[T, hlist.Nil], O]{
		run: tryFoldLast(call.AlwaysOkOnce(t), never),
	}
}

// FoldCons folds the head with t and threads the new accumulator into rest.
func FoldCons[F, A, T, B, R, O any](
	t call.Tag[F, tuple.T2[A, T], B],
	rest FoldPlan[F, B, R, O],
) FoldPlan[F, A, hlist.Cons[T, R], O] {
	return FoldPlan[F, A, hlist.Cons[T, R], O]{
		run: tryFoldCons(call.AlwaysOk(t), rest.run, never, never),
	}
}

// Fold folds l left to right.
func Fold[F, A, L, O any](l L, acc A, f F, p FoldPlan[F, A, L, O]) O {
	out, err, ok := p.run(f, acc, l)
	if !ok {
		return coprod.Absurd[O](err)
	}

	return out
}

func never(n coprod.Nil) coprod.Nil {
	return coprod.Absurd[coprod.Nil](n)
}
