// Package diagnostic collects the build-time errors, warnings, and notes that
// typelist-gen reports instead of emitting code that would not compile.
//
// Every diagnostic carries a stable code, the record pair it concerns, the
// field path, and when known the source position of the offending
// declaration, so editors can jump to it.
package diagnostic
