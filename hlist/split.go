package hlist

// Selection describes how to pull the sub-list S out of L. Rem holds the
// elements of L that S does not use.
type Selection[L, S, Rem any] struct {
	split func(L) (S, Rem)
}

// SelectNone selects nothing: the whole list is left as the remainder.
func SelectNone[L any]() Selection[L, Nil, L] {
	return Selection[L, Nil, L]{
		split: func(l L) (Nil, L) {
			return Nil{}, l
		},
	}
}

// Select takes the element at from the list and continues with rest on what
// is left. Indices are therefore relative to the remaining list, not to the
// original one.
func Select[L, T, Rem1, S, Rem any](at Index[L, T, Rem1], rest Selection[Rem1, S, Rem]) Selection[L, Cons[T, S], Rem] {
	return Selection[L, Cons[T, S], Rem]{
		split: func(l L) (Cons[T, S], Rem) {
			v, remaining := at.take(l)
			s, rem := rest.split(remaining)
			return Cons[T, S]{Value: v, Rest: s}, rem
		},
	}
}

// Split consumes l and returns the selected sub-list and the remainder.
func Split[L, S, Rem any](l L, sel Selection[L, S, Rem]) (S, Rem) {
	return sel.split(l)
}

// Shuffle reorders l. Only selections that use every element exactly once
// type-check, so fields cannot be dropped silently.
func Shuffle[L, S any](l L, sel Selection[L, S, Nil]) S {
	s, _ := sel.split(l)
	return s
}
