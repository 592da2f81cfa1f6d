package call

import (
	"typelist/hlist"
	"typelist/tuple"
)

// Tag selects the call signature of F that accepts A and returns O. A tagged
// call may be repeated.
type Tag[F, A, O any] struct {
	once func(F, A) O
	mut  func(*F, A) O
}

// CallOnce consumes f for a single call.
func (t Tag[F, A, O]) CallOnce(f F, args A) O {
	return t.once(f, args)
}

// CallMut calls f in place; state changes are kept in *f.
func (t Tag[F, A, O]) CallMut(f *F, args A) O {
	return t.mut(f, args)
}

// Once forgets that the tag may be repeated.
func (t Tag[F, A, O]) Once() OnceTag[F, A, O] {
	return OnceTag[F, A, O]{once: t.once}
}

// OnceTag selects a call signature of F that may be used only once.
type OnceTag[F, A, O any] struct {
	once func(F, A) O
}

// CallOnce consumes f for a single call.
func (t OnceTag[F, A, O]) CallOnce(f F, args A) O {
	return t.once(f, args)
}

// Direct tags a plain function: F is the function itself.
func Direct[A, O any]() Tag[func(A) O, A, O] {
	return Tag[func(A) O, A, O]{
		once: func(f func(A) O, args A) O { return f(args) },
		mut:  func(f *func(A) O, args A) O { return (*f)(args) },
	}
}

// Direct2 tags a two-argument function, packing its arguments into a pair.
func Direct2[A, B, O any]() Tag[func(A, B) O, tuple.T2[A, B], O] {
	return Tag[func(A, B) O, tuple.T2[A, B], O]{
		once: func(f func(A, B) O, args tuple.T2[A, B]) O { return f(args.V0, args.V1) },
		mut:  func(f *func(A, B) O, args tuple.T2[A, B]) O { return (*f)(args.V0, args.V1) },
	}
}

// Via tags a callable that implements the Mut tier.
func Via[F Mut[A, O], A, O any]() Tag[F, A, O] {
	return Tag[F, A, O]{
		once: func(f F, args A) O { return f.CallOnce(args) },
		mut:  func(f *F, args A) O { return (*f).CallMut(args) },
	}
}

// ViaOnce tags a callable that only implements the Once tier.
func ViaOnce[F Once[A, O], A, O any]() OnceTag[F, A, O] {
	return OnceTag[F, A, O]{
		once: func(f F, args A) O { return f.CallOnce(args) },
	}
}

// At tags the function stored at idx of an hlist of functions. The position
// is the tag: the same list answers for as many argument types as it holds
// functions.
func At[F, A, O, Rem any](idx hlist.Index[F, func(A) O, Rem]) Tag[F, A, O] {
	return Tag[F, A, O]{
		once: func(f F, args A) O {
			fn, _ := hlist.Take(f, idx)
			return fn(args)
		},
		mut: func(f *F, args A) O {
			return (*hlist.GetMut(f, idx))(args)
		},
	}
}

// At2 is At for two-argument functions.
func At2[F, A, B, O, Rem any](idx hlist.Index[F, func(A, B) O, Rem]) Tag[F, tuple.T2[A, B], O] {
	return Tag[F, tuple.T2[A, B], O]{
		once: func(f F, args tuple.T2[A, B]) O {
			fn, _ := hlist.Take(f, idx)
			return fn(args.V0, args.V1)
		},
		mut: func(f *F, args tuple.T2[A, B]) O {
			return (*hlist.GetMut(f, idx))(args.V0, args.V1)
		},
	}
}

// Method tags a pointer-receiver method of F, given as a method expression
// such as (*Visitor).OnInt.
func Method[F, A, O any](m func(*F, A) O) Tag[F, A, O] {
	return Tag[F, A, O]{
		once: func(f F, args A) O { return m(&f, args) },
		mut:  m,
	}
}

// Method2 is Method for two-argument methods.
func Method2[F, A, B, O any](m func(*F, A, B) O) Tag[F, tuple.T2[A, B], O] {
	return Tag[F, tuple.T2[A, B], O]{
		once: func(f F, args tuple.T2[A, B]) O { return m(&f, args.V0, args.V1) },
		mut:  func(f *F, args tuple.T2[A, B]) O { return m(f, args.V0, args.V1) },
	}
}

// ConstMethod tags a value-receiver method of F, such as Visitor.OnInt.
func ConstMethod[F, A, O any](m func(F, A) O) Tag[F, A, O] {
	return Tag[F, A, O]{
		once: m,
		mut:  func(f *F, args A) O { return m(*f, args) },
	}
}
