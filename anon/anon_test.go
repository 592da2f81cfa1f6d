package anon_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typelist/anon"
	"typelist/hlist"
)

func TestRoundTrip(t *testing.T) {
	v := vec3{W: 0, X: 1, Y: 2, Z: 3}
	assert.Equal(t, v, anon.FromCanon[vec3](v.IntoCanon()))

	tp := tuplePoint{F0: 1.5, F1: -2, F2: 3}
	assert.Equal(t, tp, anon.FromCanon[tuplePoint](tp.IntoCanon()))
}

func TestConvertReordersByName(t *testing.T) {
	v := vec3{W: 0, X: 1, Y: 2, Z: 3}

	p := anon.Convert[point](v, vec3ToPoint)
	assert.Equal(t, point{W: 0, X: 1, Y: 2, Z: 3}, p)

	assert.Equal(t, v, anon.Convert[vec3](p, pointToVec3))
}

func TestShuffleInverse(t *testing.T) {
	c := vec3{W: 4, X: 3, Y: 2, Z: 1}.IntoCanon()

	there := hlist.Shuffle(c, vec3ToPoint)
	back := hlist.Shuffle(there, pointToVec3)

	assert.Equal(t, c, back)
}

func TestPositionalCanonKeepsOrder(t *testing.T) {
	c := tuplePoint{F0: 1, F1: 2, F2: 3}.IntoCanon()

	assert.Equal(t, anon.Pos(float32(1)), c.Value)
	assert.Equal(t, anon.Pos(int32(2)), c.Rest.Value)
	assert.Equal(t, anon.Pos(uint32(3)), c.Rest.Rest.Value)
}

func TestFieldAccess(t *testing.T) {
	atY := hlist.There[fieldW](hlist.There[fieldX](hlist.Here[fieldY, hlist.Cons[fieldZ, hlist.Nil]]()))

	c := vec3{W: 0, X: 1, Y: 2, Z: 3}.IntoCanon()
	assert.Equal(t, float32(2), anon.Field(c, atY))

	*anon.FieldMut(&c, atY) = 20
	assert.Equal(t, float32(20), anon.FromCanon[vec3](c).Y)

	y, rest := anon.TakeField(c, atY)
	assert.Equal(t, float32(20), y)
	assert.Equal(t, hlist.Of(anon.Name[nameW](float32(0)), hlist.Of(anon.Name[nameX](float32(1)), hlist.Of(anon.Name[nameZ](float32(3)), hlist.Nil{}))), rest)
}

func TestRemoveField(t *testing.T) {
	atZ := hlist.There[fieldW](hlist.There[fieldX](hlist.There[fieldY](hlist.Here[fieldZ, hlist.Nil]())))

	z, rest := anon.RemoveField(vec3{W: 1, X: 2, Y: 3, Z: 4}, atZ)
	assert.Equal(t, float32(4), z)
	assert.Equal(t, float32(3), rest.Rest.Rest.Value.Value)
}

func TestAssemble(t *testing.T) {
	fields := hlist.Of(anon.Name[nameW](float32(0)),
		hlist.Of(anon.Name[nameX](float32(1)),
			hlist.Of(anon.Name[nameY](float32(2)),
				hlist.Of(anon.Name[nameZ](float32(3)), hlist.Nil{}))))

	assert.Equal(t, point{W: 0, X: 1, Y: 2, Z: 3}, anon.Assemble[point](fields, vec3ToPoint))
}

func TestDeepTransformNested(t *testing.T) {
	src := vec3Ex{W: 0, X: 1, Y: 2, Z: extra{Value: 3}}

	got := anon.DeepTransform(src, vec3ExToPointEx)

	assert.Equal(t, pointEx{Y: 2, W: 0, Z: inner{Value: 3}}, got)
}

func TestDeepSliceAndPointer(t *testing.T) {
	many := anon.Slice(extraToInner)

	assert.Nil(t, anon.DeepTransform([]extra(nil), many))
	assert.Equal(t, []inner{{Value: 1}, {Value: 2}}, anon.DeepTransform([]extra{{Value: 1}, {Value: 2}}, many))

	ptr := anon.Pointer(extraToInner)

	assert.Nil(t, anon.DeepTransform((*extra)(nil), ptr))

	got := anon.DeepTransform(&extra{Value: 5}, ptr)
	require.NotNil(t, got)
	assert.Equal(t, inner{Value: 5}, *got)
}

func TestDeepUnnamed(t *testing.T) {
	widen := anon.DeepUnnamed(anon.Identity[float32](),
		anon.DeepUnnamed(anon.Identity[int32](),
			anon.DeepUnnamed(anon.Identity[uint32](), anon.DeepNil[hlist.Nil]())))
	conv := anon.DeepRecord[tuplePoint, tuplePoint](widen)

	tp := tuplePoint{F0: 1, F1: 2, F2: 3}
	assert.Equal(t, tp, anon.DeepTransform(tp, conv))
}

func ExampleConvert() {
	p := anon.Convert[point](vec3{W: 0, X: 1, Y: 2, Z: 3}, vec3ToPoint)

	fmt.Printf("%+v\n", p)
	// Output: {Y:2 W:0 Z:3 X:1}
}
