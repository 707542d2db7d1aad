package types

import (
	"fmt"

	"github.com/Manu343726/dis8086/pkg/utils"
)

// Represents the type of a machine instruction operand value
type ValueType uint

const (
	ValueType_Int8 ValueType = iota
	ValueType_Int16
)

func (vt ValueType) String() string {
	switch vt {
	case ValueType_Int8:
		return "Int8"
	case ValueType_Int16:
		return "Int16"
	}

	panic("unreachable")
}

func (vt ValueType) Bits() int {
	switch vt {
	case ValueType_Int8:
		return 8
	case ValueType_Int16:
		return 16
	}

	panic("unreachable")
}

// Number of bytes used to encode a value of the type
func (vt ValueType) Bytes() int {
	return vt.Bits() / utils.BitsPerByte
}

// Returns the assembler size keyword ("byte" or "word") of the type
func (vt ValueType) SizeKeyword() string {
	switch vt {
	case ValueType_Int8:
		return "byte"
	case ValueType_Int16:
		return "word"
	}

	panic("unreachable")
}

// Returns the value type selected by an instruction width (w) bit
func WidthValueType(wide bool) ValueType {
	if wide {
		return ValueType_Int16
	}

	return ValueType_Int8
}

// Stores an integer value exactly as it was encoded in the instruction stream
type Value struct {
	raw       uint16
	valueType ValueType
}

func (v Value) Type() ValueType {
	return v.valueType
}

// Returns the encoded bits of the value, zero extended
func (v Value) Raw() uint16 {
	return v.raw
}

// Returns the value interpreted as a signed integer of its type
func (v Value) Int() int {
	switch v.valueType {
	case ValueType_Int8:
		return int(int8(v.raw))
	case ValueType_Int16:
		return int(int16(v.raw))
	}

	panic("unreachable")
}

func (v Value) String() string {
	return fmt.Sprint(v.Int())
}

func (v Value) Encode() uint64 {
	return uint64(v.raw)
}

// Stores an 8 bit signed integer value
func Int8(value int8) Value {
	return Value{
		raw:       uint16(uint8(value)),
		valueType: ValueType_Int8,
	}
}

// Stores a 16 bits signed integer value
func Int16(value int16) Value {
	return Value{
		raw:       uint16(value),
		valueType: ValueType_Int16,
	}
}

// Builds a value out of its binary representation. Bits not fitting the value type are ignored
func Decode(binaryRepresentation uint16, valueType ValueType) Value {
	return Value{
		raw:       binaryRepresentation & utils.AllOnes[uint16](valueType.Bits()),
		valueType: valueType,
	}
}
