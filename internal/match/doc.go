// Package match scores identifiers against each other and classifies field
// types, so the resolver can suggest the field a user probably meant and
// decide whether a pair of fields moves as-is or needs a deep conversion.
package match
