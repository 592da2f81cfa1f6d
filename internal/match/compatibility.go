package match

import (
	"go/types"

	"typelist/internal/common"
)

//go:generate go tool stringer -type=Compatibility -linecomment -output=compatibility_string.go

// Compatibility says how a source field type relates to a target field type.
type Compatibility int

const (
	// Incompatible types cannot be moved between records.
	Incompatible Compatibility = iota // incompatible
	// NeedsDeep types differ but share a shape a deep conversion can walk.
	NeedsDeep // needs_deep
	// Identical types move as-is.
	Identical // identical
)

// Shape is the outer structure of a field type as a deep conversion sees it.
type Shape int

const (
	ShapeOther Shape = iota
	ShapeScalar
	ShapeStruct
	ShapeSlice
	ShapePointer
)

// ShapeOf classifies t. Named struct types are ShapeStruct, unnamed ones are
// ShapeOther since no record can be declared for them.
func ShapeOf(t types.Type) Shape {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		if tt.Info()&types.IsUntyped != 0 {
			return ShapeOther
		}

		return ShapeScalar
	case *types.Slice:
		return ShapeSlice
	case *types.Pointer:
		return ShapePointer
	case *types.Named:
		switch u := tt.Underlying().(type) {
		case *types.Struct:
			if u.NumFields() == 0 {
				return ShapeScalar
			}

			return ShapeStruct
		case *types.Basic:
			return ShapeScalar
		}
	case *types.Struct:
		if tt.NumFields() == 0 {
			return ShapeScalar
		}
	}

	return ShapeOther
}

// Classify compares a source and a target field type.
func Classify(source, target types.Type) Compatibility {
	if types.Identical(source, target) {
		return Identical
	}

	ss, ts := ShapeOf(source), ShapeOf(target)
	if ss != ts {
		return Incompatible
	}

	switch ss {
	case ShapeStruct:
		return NeedsDeep
	case ShapeSlice:
		return elemCompat(
			types.Unalias(source).(*types.Slice).Elem(),
			types.Unalias(target).(*types.Slice).Elem(),
		)
	case ShapePointer:
		return elemCompat(
			types.Unalias(source).(*types.Pointer).Elem(),
			types.Unalias(target).(*types.Pointer).Elem(),
		)
	default:
		return Incompatible
	}
}

func elemCompat(source, target types.Type) Compatibility {
	if Classify(source, target) == Incompatible {
		return Incompatible
	}

	return NeedsDeep
}

// Describe renders both types for diagnostics.
func Describe(source, target types.Type) string {
	s, t := common.UnknownStr, common.UnknownStr
	if source != nil {
		s = source.String()
	}

	if target != nil {
		t = target.String()
	}

	return s + " -> " + t
}
