package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructorsAndAccessors(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.True(t, Bool(true).Bool())
	assert.Equal(t, "hi", String("hi").Str())

	n := Number(json.Number("1.50"))
	assert.Equal(t, KindNumber, n.Kind())
	assert.Equal(t, "1.50", n.Text())

	arr := Array(String("a"), String("b"))
	require.Len(t, arr.Items(), 2)
	assert.Equal(t, "b", arr.Items()[1].Str())

	obj := Object()
	obj.Set("x", String("1"))
	obj.Set("y", String("2"))
	assert.True(t, obj.IsObject())
	assert.Equal(t, []string{"x", "y"}, obj.Keys())
	v, ok := obj.Field("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.Str())
	_, ok = obj.Field("z")
	assert.False(t, ok)
}

func TestValueSetOverwriteKeepsPosition(t *testing.T) {
	obj := Object()
	obj.Set("a", String("1"))
	obj.Set("b", String("2"))
	obj.Set("a", String("3"))

	require.Equal(t, []string{"a", "b"}, obj.Keys())
	v, _ := obj.Field("a")
	assert.Equal(t, "3", v.Str())
}

func TestValueMarshalJSON(t *testing.T) {
	obj := Object()
	obj.Set("z", Number(json.Number("0.10")))
	obj.Set("a", Array(Bool(false), Null()))
	obj.Set("s", String("q\"uote"))

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	// Insertion order and the exact numeric literal survive.
	assert.Equal(t, `{"z":0.10,"a":[false,null],"s":"q\"uote"}`, string(data))
}

func TestValueEqual(t *testing.T) {
	a := Object()
	a.Set("k", Array(Number(json.Number("1")), String("x")))
	b := Object()
	b.Set("k", Array(Number(json.Number("1")), String("x")))

	assert.True(t, a.Equal(b))

	c := Object()
	c.Set("k", Array(Number(json.Number("1")), String("y")))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Null()))
}
