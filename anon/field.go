package anon

import "typelist/hlist"

// Named is a field value tagged with its encoded name N. N is an hlist of
// character markers.
type Named[T, N any] struct {
	Value T
}

// Name tags v with the name N.
func Name[N, T any](v T) Named[T, N] {
	return Named[T, N]{Value: v}
}

// Unnamed is a positional field value.
type Unnamed[T any] struct {
	Value T
}

// Pos wraps v as a positional field.
func Pos[T any](v T) Unnamed[T] {
	return Unnamed[T]{Value: v}
}

// Field returns a copy of the named field at.
func Field[L, T, N, Rem any](l L, at hlist.Index[L, Named[T, N], Rem]) T {
	return hlist.Get(l, at).Value
}

// FieldMut returns a pointer to the named field at inside l.
func FieldMut[L, T, N, Rem any](l *L, at hlist.Index[L, Named[T, N], Rem]) *T {
	return &hlist.GetMut(l, at).Value
}

// TakeField consumes l and returns the value of the field at and the other
// fields.
func TakeField[L, T, N, Rem any](l L, at hlist.Index[L, Named[T, N], Rem]) (T, Rem) {
	f, rest := hlist.Take(l, at)
	return f.Value, rest
}
