// Package coprod provides coproducts: closed tagged unions over an ordered
// list of alternatives. A [Cons] holds either a value of its first
// alternative or a coproduct of the remaining ones, and the list of
// alternatives is terminated by the uninhabited [Nil].
//
// Narrowing a coproduct is the only fallible operation in this module. It
// never panics: [Take] and [IntoSubset] report the untried remainder with
// ok == false.
package coprod
