package instructions

import (
	"fmt"
	"math/bits"

	"github.com/Manu343726/dis8086/pkg/utils"
)

// Contains implementation information of an instruction opcode
type OpCodeDescriptor struct {
	OpCode OpCode
	// Opcode bits, already placed at the most significant bits of the first instruction byte
	BinaryRepresentation byte
	// Selects the bits of the first instruction byte that belong to the opcode
	Mask byte
	// Assembly mnemonic
	Mnemonic string
	// Short human readable name distinguishing this opcode from others sharing the same mnemonic
	Variant string
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v %v (pattern: %v, mask: %v)", d.Mnemonic, d.Variant, d.Pattern(), utils.FormatUintHex(uint64(d.Mask), 2))
}

// Returns the number of bits used to encode the opcode
func (d *OpCodeDescriptor) EncodingBits() int {
	return bits.OnesCount8(d.Mask)
}

// Returns the opcode bits as a binary string, without the trailing non-opcode bits
func (d *OpCodeDescriptor) Pattern() string {
	return utils.FormatUintBinary(uint64(d.BinaryRepresentation>>(utils.BitsPerByte-d.EncodingBits())), d.EncodingBits())
}

// Returns true if the first byte of an instruction encodes this opcode
func (d *OpCodeDescriptor) Matches(byte1 byte) bool {
	return byte1&d.Mask == d.BinaryRepresentation
}
