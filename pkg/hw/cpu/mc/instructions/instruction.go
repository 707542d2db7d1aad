package instructions

import (
	"fmt"
)

// Stores a fully decoded instruction
type Instruction struct {
	Descriptor *InstructionDescriptor
	// Offset of the first instruction byte within the decoded buffer
	Offset int
	// Instruction encoding. Aliases the decoded buffer
	Bytes       []byte
	Destination OperandValue
	Source      OperandValue
}

func (i *Instruction) Mnemonic() string {
	return i.Descriptor.OpCode.Mnemonic
}

// Returns the number of bytes the instruction was encoded with
func (i *Instruction) Size() int {
	return len(i.Bytes)
}

// Returns the instruction operands, destination first
func (i *Instruction) Operands() []OperandValue {
	return []OperandValue{i.Destination, i.Source}
}

func (i *Instruction) String() string {
	return fmt.Sprintf("%v %v, %v", i.Mnemonic(), i.Destination.String(), i.Source.String())
}
