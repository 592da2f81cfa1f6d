package call

import "typelist/coprod"

// Not negates the result of a boolean tag.
func Not[F, A any](t Tag[F, A, bool]) Tag[F, A, bool] {
	return Tag[F, A, bool]{
		once: func(f F, args A) bool { return !t.once(f, args) },
		mut:  func(f *F, args A) bool { return !t.mut(f, args) },
	}
}

// NotOnce negates the result of a single-use boolean tag.
func NotOnce[F, A any](t OnceTag[F, A, bool]) OnceTag[F, A, bool] {
	return OnceTag[F, A, bool]{
		once: func(f F, args A) bool { return !t.once(f, args) },
	}
}

// AlwaysOk wraps the output of t into a Result that cannot fail, so one
// fallible algorithm serves infallible callables too.
func AlwaysOk[F, A, O any](t Tag[F, A, O]) Tag[F, A, Result[O, coprod.Nil]] {
	return Tag[F, A, Result[O, coprod.Nil]]{
		once: func(f F, args A) Result[O, coprod.Nil] { return Ok[coprod.Nil](t.once(f, args)) },
		mut:  func(f *F, args A) Result[O, coprod.Nil] { return Ok[coprod.Nil](t.mut(f, args)) },
	}
}

// AlwaysOkOnce is AlwaysOk for single-use tags.
func AlwaysOkOnce[F, A, O any](t OnceTag[F, A, O]) OnceTag[F, A, Result[O, coprod.Nil]] {
	return OnceTag[F, A, Result[O, coprod.Nil]]{
		once: func(f F, args A) Result[O, coprod.Nil] { return Ok[coprod.Nil](t.once(f, args)) },
	}
}
