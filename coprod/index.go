package coprod

// Index witnesses that T is one of the alternatives of coproduct C. Rem is C
// without that alternative.
type Index[C, T, Rem any] struct {
	depth int
	take  func(C) (T, Rem, bool)
	put   func(T) C
}

// Depth returns the zero-based position of the alternative.
func (i Index[C, T, Rem]) Depth() int {
	return i.depth
}

// Here points at the first alternative.
func Here[T, R any]() Index[Cons[T, R], T, R] {
	return Index[Cons[T, R], T, R]{
		take: func(c Cons[T, R]) (T, R, bool) {
			if c.here {
				var rest R
				return c.value, rest, true
			}

			var zero T
			return zero, c.rest, false
		},
		put: func(v T) Cons[T, R] {
			return Value[R](v)
		},
	}
}

// There points one alternative further than i, skipping H.
func There[H, R, T, Rem any](i Index[R, T, Rem]) Index[Cons[H, R], T, Cons[H, Rem]] {
	return Index[Cons[H, R], T, Cons[H, Rem]]{
		depth: i.depth + 1,
		take: func(c Cons[H, R]) (T, Cons[H, Rem], bool) {
			var zero T
			if c.here {
				return zero, Value[Rem](c.value), false
			}

			v, rem, ok := i.take(c.rest)
			if ok {
				return v, Cons[H, Rem]{}, true
			}

			return zero, Rest[H](rem), false
		},
		put: func(v T) Cons[H, R] {
			return Rest[H](i.put(v))
		},
	}
}

// Take narrows c to the alternative at. If another alternative is live, it
// returns ok == false and c re-expressed without the requested alternative.
func Take[C, T, Rem any](c C, at Index[C, T, Rem]) (value T, rest Rem, ok bool) {
	return at.take(c)
}

// Put builds a coproduct with v as the alternative at.
func Put[C, T, Rem any](v T, at Index[C, T, Rem]) C {
	return at.put(v)
}
