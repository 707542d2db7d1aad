package cpu

import (
	"errors"

	"github.com/Manu343726/dis8086/pkg/utils"
)

var (
	ErrBufferExhausted = errors.New("instruction buffer exhausted")
)

// Read-only view over a buffer of machine code. The buffer is borrowed, never copied nor modified,
// so a Code value can be shared between goroutines freely.
type Code struct {
	buffer []byte
}

func MakeCode(buffer []byte) Code {
	return Code{
		buffer: buffer,
	}
}

// Returns the number of bytes in the buffer
func (c Code) Len() int {
	return len(c.buffer)
}

// Returns the byte at the given position
func (c Code) ByteAt(position int) (byte, error) {
	if position < 0 || position >= len(c.buffer) {
		return 0, makeError(ErrBufferExhausted, "tried reading byte at offset %v of a %v bytes buffer", position, len(c.buffer))
	}

	return c.buffer[position], nil
}

// Returns the little endian 16 bit word starting at the given position
func (c Code) WordAt(position int) (uint16, error) {
	lo, err := c.ByteAt(position)
	if err != nil {
		return 0, err
	}

	hi, err := c.ByteAt(position + 1)
	if err != nil {
		return 0, err
	}

	return utils.LittleEndian16(lo, hi), nil
}

// Returns the bytes in the range [begin, begin + count). The returned slice aliases the buffer
func (c Code) Slice(begin int, count int) ([]byte, error) {
	if begin < 0 || count < 0 || begin+count > len(c.buffer) {
		return nil, makeError(ErrBufferExhausted, "tried reading %v bytes at offset %v of a %v bytes buffer", count, begin, len(c.buffer))
	}

	return c.buffer[begin : begin+count : begin+count], nil
}
