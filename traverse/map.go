package traverse

import (
	"typelist/call"
	"typelist/coprod"
	"typelist/hlist"
)

// MapPlan turns every element of L into the matching element of M.
type MapPlan[F, L, M any] struct {
	run func(F, L) M
}

// MapNil is the plan of the empty list.
func MapNil[F any]() MapPlan[F, hlist.Nil, hlist.Nil] {
	return MapPlan[F, hlist.Nil, hlist.Nil]{
		run: func(F, hlist.Nil) hlist.Nil { return hlist.Nil{} },
	}
}

// MapLast is the plan of a single remaining element.
func MapLast[F, T, U any](t call.OnceTag[F, T, U]) MapPlan[F, hlist.Cons[T, hlist.Nil], hlist.Cons[U, hlist.Nil]] {
	return MapPlan[F, hlist.Cons[T, hlist.Nil], hlist.Cons[U, hlist.Nil]]{
		run: func(f F, l hlist.Cons[T, hlist.Nil]) hlist.Cons[U, hlist.Nil] {
			return hlist.Of(t.CallOnce(f, l.Value), hlist.Nil{})
		},
	}
}

// MapCons maps the head with t and the rest with rest.
func MapCons[F, T, U, R, M any](t call.Tag[F, T, U], rest MapPlan[F, R, M]) MapPlan[F, hlist.Cons[T, R], hlist.Cons[U, M]] {
	return MapPlan[F, hlist.Cons[T, R], hlist.Cons[U, M]]{
		run: func(f F, l hlist.Cons[T, R]) hlist.Cons[U, M] {
			head := t.CallMut(&f, l.Value)
			return hlist.Of(head, rest.run(f, l.Rest))
		},
	}
}

// Map returns the list of f applied to every element of l, left to right.
func Map[F, L, M any](l L, f F, p MapPlan[F, L, M]) M {
	return p.run(f, l)
}

// CoMapPlan turns the live alternative of C into the alternative of M at the
// same position.
type CoMapPlan[F, C, M any] struct {
	run func(F, C) M
}

// CoMapNil is the plan of the empty coproduct. It is never run.
func CoMapNil[F any]() CoMapPlan[F, coprod.Nil, coprod.Nil] {
	return CoMapPlan[F, coprod.Nil, coprod.Nil]{
		run: func(_ F, c coprod.Nil) coprod.Nil { return coprod.Absurd[coprod.Nil](c) },
	}
}

// CoMapCons maps the head alternative with t when it is live and otherwise
// delegates to rest.
func CoMapCons[F, T, U, R, M any](t call.OnceTag[F, T, U], rest CoMapPlan[F, R, M]) CoMapPlan[F, coprod.Cons[T, R], coprod.Cons[U, M]] {
	return CoMapPlan[F, coprod.Cons[T, R], coprod.Cons[U, M]]{
		run: func(f F, c coprod.Cons[T, R]) coprod.Cons[U, M] {
			if v, ok := c.Value(); ok {
				return coprod.Value[M](t.CallOnce(f, v))
			}

			r, _ := c.Rest()

			return coprod.Rest[U](rest.run(f, r))
		},
	}
}

// CoMap transforms the live alternative of c, keeping its position.
func CoMap[F, C, M any](c C, f F, p CoMapPlan[F, C, M]) M {
	return p.run(f, c)
}
