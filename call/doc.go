// Package call is the callable abstraction the traversals are built on.
//
// Callables come in three tiers. [Once] may be called a single time, [Mut]
// may be called repeatedly and may update its own state, and [Ref] may be
// called repeatedly without changing state. Each tier embeds the weaker one,
// so a [Ref] is accepted wherever a [Mut] or [Once] is.
//
// A [Tag] selects one call signature of a callable value F. That lets a
// single value answer for several element types of a heterogeneous list: an
// hlist of functions picked by position ([At]), or a struct whose methods
// are picked by method expression ([Method]).
package call
