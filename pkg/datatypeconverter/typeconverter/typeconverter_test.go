package typeconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToBasicType_JSONNumberToDouble(t *testing.T) {
	v, err := ValueToBasicType(float64(1.5), "double")

	assert.NoError(t, err)
	assert.Equal(t, float64(1.5), v)
}

func TestValueToBasicType_JSONNumberToInteger(t *testing.T) {
	v, err := ValueToBasicType(float64(42), "integer")

	assert.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestValueToBasicType_StringToLong(t *testing.T) {
	v, err := ValueToBasicType(" 9000000000 ", "long")

	assert.NoError(t, err)
	assert.Equal(t, int64(9000000000), v)
}

func TestValueToBasicType_StringToFloat(t *testing.T) {
	v, err := ValueToBasicType("2.25", "float")

	assert.NoError(t, err)
	assert.Equal(t, float32(2.25), v)
}

func TestValueToBasicType_StringToBoolean(t *testing.T) {
	v, err := ValueToBasicType("true", "boolean")

	assert.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestValueToBasicType_NumberToString(t *testing.T) {
	v, err := ValueToBasicType(float64(3), "string")

	assert.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestValueToBasicType_UnparseableString(t *testing.T) {
	_, err := ValueToBasicType("not-a-number", "double")

	assert.Error(t, err)
}

func TestValueToBasicType_UnsupportedType(t *testing.T) {
	_, err := ValueToBasicType(float64(1), "decimal128")

	assert.Error(t, err)
}

func TestValueToBasicType_NilValue(t *testing.T) {
	_, err := ValueToBasicType(nil, "double")

	assert.Error(t, err)
}

func TestValueToString_Double(t *testing.T) {
	s, err := ValueToString(float64(0.5), "double")

	assert.NoError(t, err)
	assert.Equal(t, "0.5", s)
}

func TestValueToString_Boolean(t *testing.T) {
	s, err := ValueToString(false, "boolean")

	assert.NoError(t, err)
	assert.Equal(t, "false", s)
}

// A scalar rendered to text and re-parsed with the same declared type yields the
// original value.
func TestRoundTrip_BasicTypes(t *testing.T) {
	cases := []struct {
		dataType string
		value    interface{}
	}{
		{"integer", int32(-7)},
		{"long", int64(1 << 40)},
		{"double", float64(3.14159)},
		{"float", float32(1.5)},
		{"boolean", true},
		{"string", "hello world"},
	}

	for _, tc := range cases {
		text, err := ValueToString(tc.value, tc.dataType)
		assert.NoError(t, err)

		parsed, err := StringToBasicType(text, tc.dataType)
		assert.NoError(t, err)
		assert.Equal(t, tc.value, parsed, "round trip for %s", tc.dataType)
	}
}

func TestIsSupportedType_KnownAndUnknown(t *testing.T) {
	assert.True(t, IsSupportedType("double"))
	assert.True(t, IsSupportedType("STRING"))
	assert.False(t, IsSupportedType("timestamp"))
}
