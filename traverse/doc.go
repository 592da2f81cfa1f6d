// Package traverse runs a callable over every element of an hlist or over
// the live alternative of a coprod.
//
// A traversal is driven by a plan that mirrors the shape of the structure:
// one constructor per element, each holding the call.Tag for that element
// and the plan for the rest. Plans for products have three constructors.
// The Nil plan ends the recursion, the Last plan handles the final element
// with a single-use call.OnceTag, and the Cons plan handles every earlier
// element with a repeatable call.Tag.
//
//	plan := traverse.MapCons(onInt, traverse.MapLast(onString.Once()))
//	out := traverse.Map(list, visitor, plan)
//
// Plans hold no state and may be reused for any number of traversals.
package traverse
