package hlist

// Nil is the empty list. It terminates every list and is the identity of
// list concatenation.
type Nil struct{}

// Cons is a list node that owns its Value and the Rest of the list.
type Cons[T, R any] struct {
	Value T
	Rest  R
}

// Of prepends v to rest.
func Of[T, R any](v T, rest R) Cons[T, R] {
	return Cons[T, R]{Value: v, Rest: rest}
}

// Unpack returns the head and the rest of a list node.
func (c Cons[T, R]) Unpack() (T, R) {
	return c.Value, c.Rest
}
