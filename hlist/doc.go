// Package hlist provides heterogeneous lists: ordered products of statically
// distinct element types built by pairing a first value with the rest of the
// list and terminated by [Nil].
//
// Positions inside a list are named by index witnesses. An [Index] can only be
// built with [Here] ("found it at the head") and [There] ("look one further"),
// so the Go type checker rejects any witness that does not describe an actual
// position of the requested element type:
//
//	l := hlist.Of(1, hlist.Of("two", hlist.Of(3.0, hlist.Nil{})))
//
//	at := hlist.There[int](hlist.Here[string, hlist.Cons[float64, hlist.Nil]]())
//	s, rest := hlist.Take(l, at) // "two", (1, 3.0)
//
// Selections compose indices into a reordering: [Select] resolves each index
// against what is left after the previous one, and [Shuffle] only accepts a
// selection that leaves nothing behind.
//
// Witnesses are usually written by cmd/typelist-gen, which resolves positions
// at generation time and reports ambiguous or missing ones as diagnostics.
package hlist
