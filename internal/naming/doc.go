// Package naming encodes Go field identifiers as type expressions built from
// the markers in typelist/anon/character, and picks the names of the aliases
// typelist-gen declares.
package naming
