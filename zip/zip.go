// Package zip pairs two hlists of the same length element by element.
//
// The shape of both lists is fixed by a Pairing built with [Nil] and [Cons],
// so zipping lists of different lengths does not compile.
package zip

import (
	"typelist/hlist"
	"typelist/tuple"
)

// Pairing relates the lists L and R to Z, their list of pairs, and to F, the
// same pairs with both components swapped.
type Pairing[L, R, Z, F any] struct {
	zip   func(L, R) Z
	unzip func(Z) (L, R)
	flip  func(Z) F
	swap  func() Pairing[R, L, F, Z]
}

// Nil pairs two empty lists.
func Nil() Pairing[hlist.Nil, hlist.Nil, hlist.Nil, hlist.Nil] {
	p := Pairing[hlist.Nil, hlist.Nil, hlist.Nil, hlist.Nil]{
		zip:   func(hlist.Nil, hlist.Nil) hlist.Nil { return hlist.Nil{} },
		unzip: func(hlist.Nil) (hlist.Nil, hlist.Nil) { return hlist.Nil{}, hlist.Nil{} },
		flip:  func(hlist.Nil) hlist.Nil { return hlist.Nil{} },
	}
	p.swap = func() Pairing[hlist.Nil, hlist.Nil, hlist.Nil, hlist.Nil] { return p }

	return p
}

// Cons pairs a head of type T with a head of type U and the rests with rest.
func Cons[T, U, L, R, Z, F any](
	rest Pairing[L, R, Z, F],
) Pairing[hlist.Cons[T, L], hlist.Cons[U, R], hlist.Cons[tuple.T2[T, U], Z], hlist.Cons[tuple.T2[U, T], F]] {
	return Pairing[hlist.Cons[T, L], hlist.Cons[U, R], hlist.Cons[tuple.T2[T, U], Z], hlist.Cons[tuple.T2[U, T], F]]{
		zip: func(l hlist.Cons[T, L], r hlist.Cons[U, R]) hlist.Cons[tuple.T2[T, U], Z] {
			return hlist.Of(tuple.Of2(l.Value, r.Value), rest.zip(l.Rest, r.Rest))
		},
		unzip: func(z hlist.Cons[tuple.T2[T, U], Z]) (hlist.Cons[T, L], hlist.Cons[U, R]) {
			l, r := rest.unzip(z.Rest)
			return hlist.Of(z.Value.V0, l), hlist.Of(z.Value.V1, r)
		},
		flip: func(z hlist.Cons[tuple.T2[T, U], Z]) hlist.Cons[tuple.T2[U, T], F] {
			return hlist.Of(tuple.Of2(z.Value.V1, z.Value.V0), rest.flip(z.Rest))
		},
		swap: func() Pairing[hlist.Cons[U, R], hlist.Cons[T, L], hlist.Cons[tuple.T2[U, T], F], hlist.Cons[tuple.T2[T, U], Z]] {
			return Cons[U, T](rest.Swap())
		},
	}
}

// Swap returns the pairing with the roles of the two lists exchanged.
func (p Pairing[L, R, Z, F]) Swap() Pairing[R, L, F, Z] {
	return p.swap()
}

// Zip pairs the elements of l and r.
func Zip[L, R, Z, F any](l L, r R, p Pairing[L, R, Z, F]) Z {
	return p.zip(l, r)
}

// Unzip splits a list of pairs into the list of first and the list of second
// components.
func Unzip[L, R, Z, F any](z Z, p Pairing[L, R, Z, F]) (L, R) {
	return p.unzip(z)
}

// Flip swaps both components of every pair.
func Flip[L, R, Z, F any](z Z, p Pairing[L, R, Z, F]) F {
	return p.flip(z)
}
