// Package gen renders resolved plans as Go source.
//
// Generation uses text/template + go/format. Every expression is built
// as a string first, so the templates only lay out declarations.
//
// A generated file holds, in order:
//   - the encoded field names shared by all records
//   - per record, its element aliases, canonical list alias, IntoCanon and
//     FromCanon
//   - the deep converters, each after the ones it uses
//   - the conversion functions and the shuffles behind them
//
// GenerateTuples renders the fixed-arity tuple package.
package gen
