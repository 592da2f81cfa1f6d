// Package tuple provides fixed-arity tuples T0 through T16 and their
// conversions to and from hlist products.
//
// The conversions are generated; rerun the generator with a larger -max to
// support wider tuples.
package tuple

//go:generate go run ../cmd/typelist-gen tuples -max 16 -pkg tuple -out tuple_gen.go
