package anon

import "typelist/hlist"

// Record is a struct with a canonical list representation C.
type Record[C any] interface {
	IntoCanon() C
}

// Builder is the pointer type of a record R that can be filled from its
// canonical list C.
type Builder[R, C any] interface {
	*R
	FromCanon(C)
}

// FromCanon builds a record from its canonical list.
func FromCanon[R, C any, PR Builder[R, C]](c C) R {
	var r R
	PR(&r).FromCanon(c)

	return r
}

// Convert turns the record s into a D holding the same fields. sel orders the
// fields of s the way D declares them; it must use every field, so no field
// is lost on the way.
func Convert[D any, S Record[SC], SC, DC any, PD Builder[D, DC]](s S, sel hlist.Selection[SC, DC, hlist.Nil]) D {
	return FromCanon[D, DC, PD](hlist.Shuffle(s.IntoCanon(), sel))
}

// Assemble builds the record D from a list of fields in any order.
func Assemble[D, L, DC any, PD Builder[D, DC]](l L, sel hlist.Selection[L, DC, hlist.Nil]) D {
	return FromCanon[D, DC, PD](hlist.Shuffle(l, sel))
}

// RemoveField splits the record r into the value of the named field at and
// the canonical list of its other fields.
func RemoveField[R Record[C], C, T, N, Rem any](r R, at hlist.Index[C, Named[T, N], Rem]) (T, Rem) {
	return TakeField(r.IntoCanon(), at)
}
