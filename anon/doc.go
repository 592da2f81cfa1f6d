// Package anon treats structs as anonymous records: hlists whose elements
// are fields wrapped in [Named] or [Unnamed].
//
// A record type R exposes its canonical list C through two methods, usually
// written by typelist-gen:
//
//	func (v R) IntoCanon() C
//	func (v *R) FromCanon(c C)
//
// With those, [Convert] moves a value between two records that hold the
// same fields in a different order, and [DeepTransform] does the same
// through nested records and slices.
package anon
