package primitive

import (
	"go/types"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the field types a deep transform copies unchanged.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindUnit          // struct{}
	KindPrimitiveEnum // named type over any of the kinds above

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of the kind are copied as they are by a
// deep transform.
func (k KindEnum) IsScalar() bool {
	return k > 0 && int(k) < KindTotal
}

var basicKinds = map[types.BasicKind]KindEnum{
	types.Int:        KindInt,
	types.Int8:       KindInt8,
	types.Int16:      KindInt16,
	types.Int32:      KindInt32,
	types.Int64:      KindInt64,
	types.Uint:       KindUint,
	types.Uint8:      KindUint8,
	types.Uint16:     KindUint16,
	types.Uint32:     KindUint32,
	types.Uint64:     KindUint64,
	types.Uintptr:    KindUintptr,
	types.Float32:    KindFloat32,
	types.Float64:    KindFloat64,
	types.Complex64:  KindComplex64,
	types.Complex128: KindComplex128,
	types.Bool:       KindBool,
	types.String:     KindString,
}

// FromGoType classifies t. Types that are not scalars, such as structs with
// fields, slices, or maps, give the zero KindEnum.
func FromGoType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return basicKinds[tt.Kind()]

	case *types.Struct:
		if tt.NumFields() == 0 {
			return KindUnit
		}

	case *types.Named:
		if FromGoType(tt.Underlying()) != 0 {
			return KindPrimitiveEnum
		}
	}

	return 0
}
