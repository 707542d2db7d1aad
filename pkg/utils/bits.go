package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Returns a mask with the n most significant bits of T set
func HighBitsMask[T constraints.Unsigned](bits int) T {
	return AllOnes[T](bits) << (SizeofBits[T]() - bits)
}

// Implements a read/write view over an unsigned interger, allowing manipullating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Returns true if the given bit is set
func (v BitView[T]) Test(bit int) bool {
	return v.Read(bit, 1) == 1
}

// Copies a value into a range of bits, given the start and width of the range.
// All most significant bits of the value not fitting into the destination range are ignored.
func (v BitView[T]) Write(value T, bit int, width int) {
	clearedValue := value & AllOnes[T](width)
	*v.Bits = (*v.Bits &^ (AllOnes[T](width) << bit)) | (clearedValue << bit)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}

// Reads a bit field out of a byte. Shorthand for CreateBitView(&b).Read(bit, width)
func ByteField(b byte, bit int, width int) byte {
	return CreateBitView(&b).Read(bit, width)
}

// Combines two bytes into a 16 bit value, low byte first
func LittleEndian16(lo, hi byte) uint16 {
	var result uint16
	view := CreateBitView(&result)
	view.Write(uint16(lo), 0, BitsPerByte)
	view.Write(uint16(hi), BitsPerByte, BitsPerByte)
	return result
}
