package hlist

// Index witnesses that an element of type T occupies one position of list L.
// Rem is L with that element removed, other elements keeping their order.
//
// The zero Index is not usable; build one with [Here] and [There].
type Index[L, T, Rem any] struct {
	depth int
	take  func(L) (T, Rem)
	get   func(*L) *T
}

// Depth returns the zero-based position the index points at.
func (i Index[L, T, Rem]) Depth() int {
	return i.depth
}

// Here points at the head of a list.
func Here[T, R any]() Index[Cons[T, R], T, R] {
	return Index[Cons[T, R], T, R]{
		take: func(l Cons[T, R]) (T, R) {
			return l.Value, l.Rest
		},
		get: func(l *Cons[T, R]) *T {
			return &l.Value
		},
	}
}

// There points one position further than i, skipping a head of type H.
func There[H, R, T, Rem any](i Index[R, T, Rem]) Index[Cons[H, R], T, Cons[H, Rem]] {
	return Index[Cons[H, R], T, Cons[H, Rem]]{
		depth: i.depth + 1,
		take: func(l Cons[H, R]) (T, Cons[H, Rem]) {
			v, rest := i.take(l.Rest)
			return v, Cons[H, Rem]{Value: l.Value, Rest: rest}
		},
		get: func(l *Cons[H, R]) *T {
			return i.get(&l.Rest)
		},
	}
}

// Get returns a copy of the element at.
func Get[L, T, Rem any](l L, at Index[L, T, Rem]) T {
	return *at.get(&l)
}

// GetMut returns a pointer to the element at. The pointer is only valid as
// long as l is.
func GetMut[L, T, Rem any](l *L, at Index[L, T, Rem]) *T {
	return at.get(l)
}

// Take consumes l and returns the element at together with every other
// element in the original relative order.
func Take[L, T, Rem any](l L, at Index[L, T, Rem]) (T, Rem) {
	return at.take(l)
}
