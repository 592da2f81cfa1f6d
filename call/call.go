package call

import "errors"

// ErrConsumed is the panic value of a single-use callable called twice.
var ErrConsumed = errors.New("call: single-use callable called more than once")

// Once is a callable that may be called a single time.
type Once[A, O any] interface {
	CallOnce(args A) O
}

// Mut is a callable that may be called repeatedly and may update its state.
type Mut[A, O any] interface {
	Once[A, O]
	CallMut(args A) O
}

// Ref is a callable that may be called repeatedly without side effects on
// itself.
type Ref[A, O any] interface {
	Mut[A, O]
	Call(args A) O
}

// Func lifts a plain function into every tier.
type Func[A, O any] func(A) O

func (f Func[A, O]) CallOnce(args A) O { return f(args) }
func (f Func[A, O]) CallMut(args A) O  { return f(args) }
func (f Func[A, O]) Call(args A) O     { return f(args) }

// Stateful is a repeatable callable that threads State through every call.
// Use it through a pointer.
type Stateful[S, A, O any] struct {
	State S
	Step  func(state *S, args A) O
}

func (s *Stateful[S, A, O]) CallOnce(args A) O { return s.Step(&s.State, args) }
func (s *Stateful[S, A, O]) CallMut(args A) O  { return s.Step(&s.State, args) }

// OnceFunc is a callable that refuses a second call.
type OnceFunc[A, O any] struct {
	fn   func(A) O
	used bool
}

// NewOnce wraps fn into a single-use callable.
func NewOnce[A, O any](fn func(A) O) *OnceFunc[A, O] {
	return &OnceFunc[A, O]{fn: fn}
}

// CallOnce calls the wrapped function. It panics with ErrConsumed when
// called again.
func (o *OnceFunc[A, O]) CallOnce(args A) O {
	if o.used {
		panic(ErrConsumed)
	}

	o.used = true

	return o.fn(args)
}
