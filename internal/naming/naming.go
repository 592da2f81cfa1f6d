package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"typelist/internal/common"
)

// ErrUnsupportedName is returned for identifiers outside the marker alphabet.
var ErrUnsupportedName = errors.New("identifier cannot be encoded")

// Marker returns the name of the character type that encodes r.
func Marker(r rune) (string, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return string(r), true
	case r >= 'a' && r <= 'z':
		return "Lower" + strings.ToUpper(string(r)), true
	case r >= '0' && r <= '9':
		return "D" + string(r), true
	case r == '_':
		return "Underscore", true
	default:
		return "", false
	}
}

// Qualifiers holds the package names generated code refers to.
type Qualifiers struct {
	HList     string
	Character string
}

// DefaultQualifiers are the names of the typelist packages when imported
// without an alias.
var DefaultQualifiers = Qualifiers{HList: "hlist", Character: "character"}

// Encode renders ident as a list of character markers, e.g.
// "Xy" becomes hlist.Cons[character.X, hlist.Cons[character.LowerY, hlist.Nil]].
func Encode(ident string, q Qualifiers) (string, error) {
	if ident == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrUnsupportedName)
	}

	var sb strings.Builder

	for i, r := range ident {
		m, ok := Marker(r)
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d of %s", ErrUnsupportedName, r, i, ident)
		}

		sb.WriteString(q.HList + ".Cons[" + q.Character + "." + m + ", ")
	}

	sb.WriteString(q.HList + ".Nil")
	sb.WriteString(strings.Repeat("]", len(ident)))

	return sb.String(), nil
}

// NameAlias is the alias declared for the encoded name of a field.
func NameAlias(field string) string {
	return "nameOf_" + field
}

// ElemAlias is the alias declared for one element of a record's canonical
// list. Positional fields are keyed by their index.
func ElemAlias(record, field string) string {
	return common.LowerFirst(record) + "_" + field
}

// PositionAlias is ElemAlias for the i-th positional field.
func PositionAlias(record string, i int) string {
	return ElemAlias(record, strconv.Itoa(i))
}

// CanonAlias is the exported alias of a record's canonical list.
func CanonAlias(record string) string {
	return record + "Canon"
}

// ShuffleVar is the variable holding the field selection of a conversion.
func ShuffleVar(source, target string) string {
	return common.LowerFirst(source) + "To" + target + "Shuffle"
}

// DeepVar is the variable holding a deep conversion.
func DeepVar(source, target string) string {
	return common.LowerFirst(source) + "To" + target + "Deep"
}

// ConvertFunc is the default name of a generated conversion function.
func ConvertFunc(source, target string) string {
	return source + "To" + target
}
