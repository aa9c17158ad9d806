package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesKeyOrder(t *testing.T) {
	input := `{"zebra": 1, "apple": 2, "mango": 3}`

	v, err := Decode([]byte(input))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)

	fields := Fields(obj)
	require.Len(t, fields, 3)
	assert.Equal(t, "zebra", fields[0].Name)
	assert.Equal(t, "apple", fields[1].Name)
	assert.Equal(t, "mango", fields[2].Name)
}

func TestDecode_ValueTypes(t *testing.T) {
	input := `{"s": "hi", "n": 1.5, "i": 42, "b": true, "z": null, "a": [1], "o": {}}`

	v, err := Decode([]byte(input))
	require.NoError(t, err)

	obj := v.(*Object)
	s, _ := obj.Get("s")
	assert.Equal(t, "hi", s)
	n, _ := obj.Get("n")
	assert.Equal(t, 1.5, n)
	i, _ := obj.Get("i")
	assert.Equal(t, float64(42), i)
	b, _ := obj.Get("b")
	assert.Equal(t, true, b)
	z, _ := obj.Get("z")
	assert.Nil(t, z)
	a, _ := obj.Get("a")
	assert.Equal(t, []any{float64(1)}, a)
	o, _ := obj.Get("o")
	assert.IsType(t, &Object{}, o)
}

func TestDecode_TopLevelScalars(t *testing.T) {
	testCases := []struct {
		input string
		want  any
	}{
		{`"hello"`, "hello"},
		{`200`, float64(200)},
		{`true`, true},
		{`null`, nil},
		{`[]`, []any{}},
	}

	for _, tc := range testCases {
		v, err := Decode([]byte(tc.input))
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, v, tc.input)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := Decode([]byte(input))
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "input %q", input)
		assert.Contains(t, pe.Message, "empty input")
	}
}

func TestDecode_MalformedInput(t *testing.T) {
	testCases := []string{
		`{"a": }`,
		`{"a": 1,}`,
		`[1, 2,`,
		`{"a": 1} trailing`,
		`not json`,
	}

	for _, input := range testCases {
		_, err := Decode([]byte(input))
		var pe *ParseError
		assert.ErrorAs(t, err, &pe, "input %q", input)
	}
}

func TestDecode_ParseErrorCarriesOffset(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1, "b": }`))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Greater(t, pe.Offset, int64(0))
	assert.Contains(t, pe.Error(), "offset")
}

func TestKindOf_Classification(t *testing.T) {
	testCases := []struct {
		value any
		want  Kind
	}{
		{nil, KindNull},
		{Undefined, KindUndefined},
		{"x", KindString},
		{3.14, KindNumber},
		{42, KindNumber},
		{true, KindBoolean},
		{[]any{}, KindArray},
		{NewObject(), KindObject},
		{map[string]any{}, KindObject},
		{struct{}{}, KindNull}, // opaque values classify as null
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, KindOf(tc.value))
	}
}

func TestFields_PlainMapSortsKeys(t *testing.T) {
	fields := Fields(map[string]any{"c": 1, "a": 2, "b": 3})
	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "b", fields[1].Name)
	assert.Equal(t, "c", fields[2].Name)
}

func TestNumberString_IntegralFloats(t *testing.T) {
	assert.Equal(t, "200", NumberString(float64(200)))
	assert.Equal(t, "-7", NumberString(float64(-7)))
	assert.Equal(t, "1.5", NumberString(1.5))
	assert.Equal(t, "42", NumberString(42))
}

func TestIdentity_EmptySlicesExcluded(t *testing.T) {
	_, ok := Identity([]any{})
	assert.False(t, ok)

	_, ok = Identity([]any{1})
	assert.True(t, ok)

	_, ok = Identity(NewObject())
	assert.True(t, ok)

	_, ok = Identity("scalar")
	assert.False(t, ok)
}
