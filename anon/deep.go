package anon

import "typelist/hlist"

// Scalar is the set of types a deep transform copies as they are.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~struct{}
}

// Deep converts S into D field by field, recursing into nested records and
// slices.
type Deep[S, D any] struct {
	conv func(S) D
}

// DeepTransform converts s with d.
func DeepTransform[S, D any](s S, d Deep[S, D]) D {
	return d.conv(s)
}

// Identity copies a scalar.
func Identity[T Scalar]() Deep[T, T] {
	return Deep[T, T]{
		conv: func(v T) T { return v },
	}
}

// Slice converts every element of a slice with elem. A nil slice stays nil.
func Slice[S, D any](elem Deep[S, D]) Deep[[]S, []D] {
	return Deep[[]S, []D]{
		conv: func(s []S) []D {
			if s == nil {
				return nil
			}

			out := make([]D, len(s))
			for i, v := range s {
				out[i] = elem.conv(v)
			}

			return out
		},
	}
}

// Pointer converts the value behind a pointer into a new value. A nil
// pointer stays nil.
func Pointer[S, D any](elem Deep[S, D]) Deep[*S, *D] {
	return Deep[*S, *D]{
		conv: func(s *S) *D {
			if s == nil {
				return nil
			}

			d := elem.conv(*s)

			return &d
		},
	}
}

// DeepNamed converts the value of a named field and keeps its name.
func DeepNamed[S, D, N any](value Deep[S, D]) Deep[Named[S, N], Named[D, N]] {
	return Deep[Named[S, N], Named[D, N]]{
		conv: func(s Named[S, N]) Named[D, N] {
			return Named[D, N]{Value: value.conv(s.Value)}
		},
	}
}

// DeepNil ends a deep conversion. Source fields the target does not declare
// are dropped.
func DeepNil[L any]() Deep[L, hlist.Nil] {
	return Deep[L, hlist.Nil]{
		conv: func(L) hlist.Nil { return hlist.Nil{} },
	}
}

// DeepField fills the head field N of the target: it removes the field N
// from the source, converts its value with value, and converts the other
// source fields with rest.
func DeepField[L, U, N, Rem, T, Rt any](
	at hlist.Index[L, Named[U, N], Rem],
	value Deep[U, T],
	rest Deep[Rem, Rt],
) Deep[L, hlist.Cons[Named[T, N], Rt]] {
	return Deep[L, hlist.Cons[Named[T, N], Rt]]{
		conv: func(l L) hlist.Cons[Named[T, N], Rt] {
			v, remaining := TakeField(l, at)
			return hlist.Of(Named[T, N]{Value: value.conv(v)}, rest.conv(remaining))
		},
	}
}

// DeepUnnamed converts positional fields in order.
func DeepUnnamed[U, T, R, Rt any](value Deep[U, T], rest Deep[R, Rt]) Deep[hlist.Cons[Unnamed[U], R], hlist.Cons[Unnamed[T], Rt]] {
	return Deep[hlist.Cons[Unnamed[U], R], hlist.Cons[Unnamed[T], Rt]]{
		conv: func(l hlist.Cons[Unnamed[U], R]) hlist.Cons[Unnamed[T], Rt] {
			return hlist.Of(Unnamed[T]{Value: value.conv(l.Value.Value)}, rest.conv(l.Rest))
		},
	}
}

// DeepInto builds the record D from the canonical list produced by inner.
func DeepInto[D, S, DC any, PD Builder[D, DC]](inner Deep[S, DC]) Deep[S, D] {
	return Deep[S, D]{
		conv: func(s S) D {
			return FromCanon[D, DC, PD](inner.conv(s))
		},
	}
}

// DeepFrom feeds the canonical list of the record S to inner.
func DeepFrom[S Record[SC], SC, D any](inner Deep[SC, D]) Deep[S, D] {
	return Deep[S, D]{
		conv: func(s S) D {
			return inner.conv(s.IntoCanon())
		},
	}
}

// DeepRecord converts the record S into the record D through their
// canonical lists.
func DeepRecord[D any, S Record[SC], SC, DC any, PD Builder[D, DC]](inner Deep[SC, DC]) Deep[S, D] {
	return DeepInto[D, S, DC, PD](DeepFrom[S](inner))
}
