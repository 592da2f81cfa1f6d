package coprod

// Embedding widens coproduct C into D, which declares at least every
// alternative of C.
type Embedding[C, D any] struct {
	embed func(C) D
}

// EmbedNone embeds the empty coproduct into any D.
func EmbedNone[D any]() Embedding[Nil, D] {
	return Embedding[Nil, D]{
		embed: func(n Nil) D { return Absurd[D](n) },
	}
}

// Embed places the head alternative of Cons[T, R] at position at of D and
// delegates the other alternatives to rest.
func Embed[T, R, D, Rem any](at Index[D, T, Rem], rest Embedding[R, D]) Embedding[Cons[T, R], D] {
	return Embedding[Cons[T, R], D]{
		embed: func(c Cons[T, R]) D {
			if c.here {
				return at.put(c.value)
			}

			return rest.embed(c.rest)
		},
	}
}

// IntoSuperset widens c. It cannot fail: every live alternative of C exists
// in D by construction of the embedding.
func IntoSuperset[C, D any](c C, e Embedding[C, D]) D {
	return e.embed(c)
}

// Subset narrows coproduct C to S. Rem holds the alternatives of C that S
// does not declare.
type Subset[C, S, Rem any] struct {
	narrow func(C) (S, Rem, bool)
}

// SubsetNone narrows to the empty coproduct, which always fails and leaves c
// untouched.
func SubsetNone[C any]() Subset[C, Nil, C] {
	return Subset[C, Nil, C]{
		narrow: func(c C) (Nil, C, bool) {
			return nil, c, false
		},
	}
}

// SubsetCons tries the alternative at first, then narrows what is left with
// rest.
func SubsetCons[C, T, Rem1, R, Rem any](at Index[C, T, Rem1], rest Subset[Rem1, R, Rem]) Subset[C, Cons[T, R], Rem] {
	return Subset[C, Cons[T, R], Rem]{
		narrow: func(c C) (Cons[T, R], Rem, bool) {
			v, remaining, ok := at.take(c)
			if ok {
				var rem Rem
				return Value[R](v), rem, true
			}

			s, rem, ok := rest.narrow(remaining)
			if !ok {
				return Cons[T, R]{}, rem, false
			}

			return Rest[T](s), rem, true
		},
	}
}

// IntoSubset narrows c to S. When the live alternative is not declared by S
// it returns ok == false and the untried alternatives, the live one included.
func IntoSubset[C, S, Rem any](c C, s Subset[C, S, Rem]) (S, Rem, bool) {
	return s.narrow(c)
}

// Shuffle reorders the alternatives of c. Only subsets with an empty
// remainder type-check, so it cannot fail.
func Shuffle[C, S any](c C, s Subset[C, S, Nil]) S {
	out, rem, ok := s.narrow(c)
	if !ok {
		return Absurd[S](rem)
	}

	return out
}
