// Package plan resolves, at generation time, the positions that the
// generated code hands to hlist and anon as index witnesses.
//
// Resolution pipeline:
//  1. Analyze the package → named types with fields and positions
//  2. Register every configured record, plus every record a conversion
//     mentions, and encode its field names
//  3. For each conversion:
//     - shallow: pick, for every target field in order, the source field
//     with the same name (or, for positional records, the same type) among
//     the fields not yet picked; every source field must be used
//     - deep: the same by name or position, but field values may differ by
//     nested records, slices and pointers of records, resolved as further
//     deep pairs; unused source fields are dropped
//  4. Emit diagnostics instead of plans that would not compile
package plan
