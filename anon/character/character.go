// Package character is the alphabet of encoded field names.
//
// A field name is the hlist of its characters, so
//
//	hlist.Cons[character.LowerI, hlist.Cons[character.D0, hlist.Nil]]
//
// is the name "i0". Two names are the same type exactly when they are
// spelled the same.
package character

// Upper-case letters.
type (
	A struct{}
	B struct{}
	C struct{}
	D struct{}
	E struct{}
	F struct{}
	G struct{}
	H struct{}
	I struct{}
	J struct{}
	K struct{}
	L struct{}
	M struct{}
	N struct{}
	O struct{}
	P struct{}
	Q struct{}
	R struct{}
	S struct{}
	T struct{}
	U struct{}
	V struct{}
	W struct{}
	X struct{}
	Y struct{}
	Z struct{}
)

// Lower-case letters.
type (
	LowerA struct{}
	LowerB struct{}
	LowerC struct{}
	LowerD struct{}
	LowerE struct{}
	LowerF struct{}
	LowerG struct{}
	LowerH struct{}
	LowerI struct{}
	LowerJ struct{}
	LowerK struct{}
	LowerL struct{}
	LowerM struct{}
	LowerN struct{}
	LowerO struct{}
	LowerP struct{}
	LowerQ struct{}
	LowerR struct{}
	LowerS struct{}
	LowerT struct{}
	LowerU struct{}
	LowerV struct{}
	LowerW struct{}
	LowerX struct{}
	LowerY struct{}
	LowerZ struct{}
)

// Decimal digits.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

// Underscore is the only symbol allowed in a Go identifier.
type Underscore struct{}
