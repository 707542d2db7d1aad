package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_SignInterpretation(t *testing.T) {
	tests := []struct {
		raw       uint16
		valueType ValueType
		expected  int
	}{
		{0x0C, ValueType_Int8, 12},
		{0xF4, ValueType_Int8, -12},
		{0x80, ValueType_Int8, -128},
		{0x000C, ValueType_Int16, 12},
		{0xFFF4, ValueType_Int16, -12},
		{0x8000, ValueType_Int16, -32768},
		{0x0F6C, ValueType_Int16, 3948},
	}

	for _, test := range tests {
		t.Run(test.valueType.String(), func(t *testing.T) {
			value := Decode(test.raw, test.valueType)
			assert.Equal(t, test.expected, value.Int())
			assert.Equal(t, test.raw, value.Raw())
		})
	}
}

func TestDecode_TruncatesToValueType(t *testing.T) {
	value := Decode(0x12F4, ValueType_Int8)

	assert.Equal(t, uint16(0xF4), value.Raw())
	assert.Equal(t, "-12", value.String())
}

func TestInt8AndInt16RoundTrip(t *testing.T) {
	assert.Equal(t, Decode(0xDB, ValueType_Int8), Int8(-37))
	assert.Equal(t, Decode(0xFED4, ValueType_Int16), Int16(-300))
}

func TestSizeKeyword(t *testing.T) {
	assert.Equal(t, "byte", WidthValueType(false).SizeKeyword())
	assert.Equal(t, "word", WidthValueType(true).SizeKeyword())
	assert.Equal(t, 1, ValueType_Int8.Bytes())
	assert.Equal(t, 2, ValueType_Int16.Bytes())
}
