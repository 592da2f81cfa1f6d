package coprod

// Borrow maps a coproduct C to the coproduct P of pointers to its
// alternatives.
type Borrow[C, P any] struct {
	as func(*C) P
}

// BorrowNil borrows the empty coproduct.
func BorrowNil() Borrow[Nil, Nil] {
	return Borrow[Nil, Nil]{
		as: func(n *Nil) Nil { return *n },
	}
}

// BorrowCons borrows a coproduct node given the borrow of its rest.
func BorrowCons[T, R, P any](rest Borrow[R, P]) Borrow[Cons[T, R], Cons[*T, P]] {
	return Borrow[Cons[T, R], Cons[*T, P]]{
		as: func(c *Cons[T, R]) Cons[*T, P] {
			if c.here {
				return Value[P](&c.value)
			}

			return Rest[*T](rest.as(&c.rest))
		},
	}
}

// AsMut returns a coproduct pointing at the live alternative of c.
func AsMut[C, P any](c *C, b Borrow[C, P]) P {
	return b.as(c)
}
