package anon_test

import (
	"typelist/anon"
	"typelist/anon/character"
	"typelist/hlist"
)

// Records written the way typelist-gen emits them.

type (
	nameW     = hlist.Cons[character.W, hlist.Nil]
	nameX     = hlist.Cons[character.X, hlist.Nil]
	nameY     = hlist.Cons[character.Y, hlist.Nil]
	nameZ     = hlist.Cons[character.Z, hlist.Nil]
	nameValue = hlist.Cons[character.V, hlist.Cons[character.LowerA, hlist.Cons[character.LowerL, hlist.Cons[character.LowerU, hlist.Cons[character.LowerE, hlist.Nil]]]]]
)

type (
	fieldW = anon.Named[float32, nameW]
	fieldX = anon.Named[float32, nameX]
	fieldY = anon.Named[float32, nameY]
	fieldZ = anon.Named[float32, nameZ]
)

type vec3 struct {
	W, X, Y, Z float32
}

type vec3Canon = hlist.Cons[fieldW, hlist.Cons[fieldX, hlist.Cons[fieldY, hlist.Cons[fieldZ, hlist.Nil]]]]

func (v vec3) IntoCanon() vec3Canon {
	return hlist.Of(anon.Name[nameW](v.W),
		hlist.Of(anon.Name[nameX](v.X),
			hlist.Of(anon.Name[nameY](v.Y),
				hlist.Of(anon.Name[nameZ](v.Z), hlist.Nil{}))))
}

func (v *vec3) FromCanon(c vec3Canon) {
	v.W = c.Value.Value
	v.X = c.Rest.Value.Value
	v.Y = c.Rest.Rest.Value.Value
	v.Z = c.Rest.Rest.Rest.Value.Value
}

type point struct {
	Y, W, Z, X float32
}

type pointCanon = hlist.Cons[fieldY, hlist.Cons[fieldW, hlist.Cons[fieldZ, hlist.Cons[fieldX, hlist.Nil]]]]

func (v point) IntoCanon() pointCanon {
	return hlist.Of(anon.Name[nameY](v.Y),
		hlist.Of(anon.Name[nameW](v.W),
			hlist.Of(anon.Name[nameZ](v.Z),
				hlist.Of(anon.Name[nameX](v.X), hlist.Nil{}))))
}

func (v *point) FromCanon(c pointCanon) {
	v.Y = c.Value.Value
	v.W = c.Rest.Value.Value
	v.Z = c.Rest.Rest.Value.Value
	v.X = c.Rest.Rest.Rest.Value.Value
}

var vec3ToPoint = hlist.Select(
	hlist.There[fieldW](hlist.There[fieldX](hlist.Here[fieldY, hlist.Cons[fieldZ, hlist.Nil]]())),
	hlist.Select(
		hlist.Here[fieldW, hlist.Cons[fieldX, hlist.Cons[fieldZ, hlist.Nil]]](),
		hlist.Select(
			hlist.There[fieldX](hlist.Here[fieldZ, hlist.Nil]()),
			hlist.Select(
				hlist.Here[fieldX, hlist.Nil](),
				hlist.SelectNone[hlist.Nil](),
			),
		),
	),
)

var pointToVec3 = hlist.Select(
	hlist.There[fieldY](hlist.Here[fieldW, hlist.Cons[fieldZ, hlist.Cons[fieldX, hlist.Nil]]]()),
	hlist.Select(
		hlist.There[fieldY](hlist.There[fieldZ](hlist.Here[fieldX, hlist.Nil]())),
		hlist.Select(
			hlist.Here[fieldY, hlist.Cons[fieldZ, hlist.Nil]](),
			hlist.Select(
				hlist.Here[fieldZ, hlist.Nil](),
				hlist.SelectNone[hlist.Nil](),
			),
		),
	),
)

type extra struct {
	Value float32
}

type extraCanon = hlist.Cons[anon.Named[float32, nameValue], hlist.Nil]

func (v extra) IntoCanon() extraCanon {
	return hlist.Of(anon.Name[nameValue](v.Value), hlist.Nil{})
}

func (v *extra) FromCanon(c extraCanon) {
	v.Value = c.Value.Value
}

type inner struct {
	Value float32
}

type innerCanon = hlist.Cons[anon.Named[float32, nameValue], hlist.Nil]

func (v inner) IntoCanon() innerCanon {
	return hlist.Of(anon.Name[nameValue](v.Value), hlist.Nil{})
}

func (v *inner) FromCanon(c innerCanon) {
	v.Value = c.Value.Value
}

type vec3Ex struct {
	W, X, Y float32
	Z       extra
}

type vec3ExCanon = hlist.Cons[fieldW, hlist.Cons[fieldX, hlist.Cons[fieldY, hlist.Cons[anon.Named[extra, nameZ], hlist.Nil]]]]

func (v vec3Ex) IntoCanon() vec3ExCanon {
	return hlist.Of(anon.Name[nameW](v.W),
		hlist.Of(anon.Name[nameX](v.X),
			hlist.Of(anon.Name[nameY](v.Y),
				hlist.Of(anon.Name[nameZ](v.Z), hlist.Nil{}))))
}

func (v *vec3Ex) FromCanon(c vec3ExCanon) {
	v.W = c.Value.Value
	v.X = c.Rest.Value.Value
	v.Y = c.Rest.Rest.Value.Value
	v.Z = c.Rest.Rest.Rest.Value.Value
}

type pointEx struct {
	Y, W float32
	Z    inner
}

type pointExCanon = hlist.Cons[fieldY, hlist.Cons[fieldW, hlist.Cons[anon.Named[inner, nameZ], hlist.Nil]]]

func (v pointEx) IntoCanon() pointExCanon {
	return hlist.Of(anon.Name[nameY](v.Y),
		hlist.Of(anon.Name[nameW](v.W),
			hlist.Of(anon.Name[nameZ](v.Z), hlist.Nil{})))
}

func (v *pointEx) FromCanon(c pointExCanon) {
	v.Y = c.Value.Value
	v.W = c.Rest.Value.Value
	v.Z = c.Rest.Rest.Value.Value
}

var extraToInner = anon.DeepRecord[inner, extra](
	anon.DeepField(
		hlist.Here[anon.Named[float32, nameValue], hlist.Nil](),
		anon.Identity[float32](),
		anon.DeepNil[hlist.Nil](),
	),
)

var vec3ExToPointEx = anon.DeepRecord[pointEx, vec3Ex](
	anon.DeepField(
		hlist.There[fieldW](hlist.There[fieldX](hlist.Here[fieldY, hlist.Cons[anon.Named[extra, nameZ], hlist.Nil]]())),
		anon.Identity[float32](),
		anon.DeepField(
			hlist.Here[fieldW, hlist.Cons[fieldX, hlist.Cons[anon.Named[extra, nameZ], hlist.Nil]]](),
			anon.Identity[float32](),
			anon.DeepField(
				hlist.There[fieldX](hlist.Here[anon.Named[extra, nameZ], hlist.Nil]()),
				extraToInner,
				anon.DeepNil[hlist.Cons[fieldX, hlist.Nil]](),
			),
		),
	),
)

type tuplePoint struct {
	F0 float32
	F1 int32
	F2 uint32
}

type tuplePointCanon = hlist.Cons[anon.Unnamed[float32], hlist.Cons[anon.Unnamed[int32], hlist.Cons[anon.Unnamed[uint32], hlist.Nil]]]

func (v tuplePoint) IntoCanon() tuplePointCanon {
	return hlist.Of(anon.Pos(v.F0), hlist.Of(anon.Pos(v.F1), hlist.Of(anon.Pos(v.F2), hlist.Nil{})))
}

func (v *tuplePoint) FromCanon(c tuplePointCanon) {
	v.F0 = c.Value.Value
	v.F1 = c.Rest.Value.Value
	v.F2 = c.Rest.Rest.Value.Value
}
