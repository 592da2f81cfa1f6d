package common

import "strings"

// UnknownStr is the String form of enum values outside their declared range.
const UnknownStr = "unknown"

// LowerFirst lower-cases the first byte of an ASCII identifier.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
