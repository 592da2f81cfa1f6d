package hlist

// Borrow maps a list L to the list P of pointers to its elements.
type Borrow[L, P any] struct {
	as func(*L) P
}

// BorrowNil borrows the empty list.
func BorrowNil() Borrow[Nil, Nil] {
	return Borrow[Nil, Nil]{
		as: func(*Nil) Nil { return Nil{} },
	}
}

// BorrowCons borrows a list node given the borrow of its rest.
func BorrowCons[T, R, P any](rest Borrow[R, P]) Borrow[Cons[T, R], Cons[*T, P]] {
	return Borrow[Cons[T, R], Cons[*T, P]]{
		as: func(l *Cons[T, R]) Cons[*T, P] {
			return Cons[*T, P]{Value: &l.Value, Rest: rest.as(&l.Rest)}
		},
	}
}

// AsMut returns pointers to every element of l, in order. Writes through the
// pointers are visible in l.
func AsMut[L, P any](l *L, b Borrow[L, P]) P {
	return b.as(l)
}
