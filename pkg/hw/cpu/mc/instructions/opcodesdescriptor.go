package instructions

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Manu343726/dis8086/pkg/utils"
)

// Returns information about the implemented opcodes
type OpCodesDescriptor struct {
	// Descriptors sorted by increasing opcode specificity (number of mask bits)
	ordered  []*OpCodeDescriptor
	byOpCode map[OpCode]*OpCodeDescriptor
}

func (d *OpCodesDescriptor) Descriptor(op OpCode) *OpCodeDescriptor {
	if descriptor, hasOpCode := d.byOpCode[op]; hasOpCode {
		return descriptor
	}

	panic(fmt.Sprintf("no descriptor for opcode %d", uint(op)))
}

// Returns the descriptors of all implemented opcodes, in matching order
func (d *OpCodesDescriptor) AllOpCodes() []*OpCodeDescriptor {
	return d.ordered
}

// Number of opcodes implemented
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.ordered)
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	return d.Descriptor(op).Mnemonic
}

var ErrUnrecognizedOpCode error = errors.New("unrecognized instruction opcode")

// Finds the opcode encoded in the first byte of an instruction.
//
// Masks are tried from the most general to the most specific one, and a descriptor only matches
// if the masked byte equals its exact opcode bits.
func (d *OpCodesDescriptor) Match(byte1 byte) (*OpCodeDescriptor, error) {
	for _, descriptor := range d.ordered {
		if descriptor.Matches(byte1) {
			return descriptor, nil
		}
	}

	return nil, utils.MakeError(ErrUnrecognizedOpCode, "%v (bin: %v)", utils.FormatUintHex(uint64(byte1), 2), utils.FormatUintBinary(uint64(byte1), 8))
}

// Initializes an opcodes descriptor with the given opcodes
func NewOpCodesDescriptor(descriptors []*OpCodeDescriptor) OpCodesDescriptor {
	byOpCode := utils.GenMap(descriptors, func(d *OpCodeDescriptor) OpCode { return d.OpCode })

	for _, opCode := range utils.Iota(int(TOTAL_OPCODES), func(i int) OpCode { return OpCode(i) }) {
		if _, hasOpCode := byOpCode[opCode]; !hasOpCode {
			panic(fmt.Sprintf("missing entry for opcode %d in opcodes table. Make sure you've added all opcodes in the NewOpCodesDescriptor() call", uint(opCode)))
		}
	}

	if len(byOpCode) != len(descriptors) {
		panic("duplicated entries in opcodes table")
	}

	for _, descriptor := range descriptors {
		if descriptor.Mask != utils.HighBitsMask[byte](descriptor.EncodingBits()) {
			panic(fmt.Sprintf("opcode %v mask must select contiguous most significant bits", descriptor))
		}

		if descriptor.BinaryRepresentation&^descriptor.Mask != 0 {
			panic(fmt.Sprintf("opcode %v has bits set outside of its mask", descriptor))
		}
	}

	ordered := slices.Clone(descriptors)
	slices.SortStableFunc(ordered, func(a, b *OpCodeDescriptor) int {
		return a.EncodingBits() - b.EncodingBits()
	})

	return OpCodesDescriptor{
		ordered:  ordered,
		byOpCode: byOpCode,
	}
}
