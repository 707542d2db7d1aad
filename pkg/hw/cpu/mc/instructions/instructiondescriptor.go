package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/dis8086/pkg/utils"
)

// Decodes the operands of an instruction whose opcode has already been identified
type decodeFunc func(ctx *decodeContext, byte1 byte) (destination OperandValue, source OperandValue, err error)

// Contains information describing an instruction
type InstructionDescriptor struct {
	// Instruction opcode
	OpCode *OpCodeDescriptor
	// Instruction operands, destination first
	Operands []*OperandDescriptor
	// Instruction description (for documentation and debugging)
	Description string
	// Bit fields of the longest encoding of the instruction, in stream order.
	// Fields in parentheses are only present for some addressing modes or widths
	Layout []utils.AsciiFrameField

	decode decodeFunc
}

// Returns a human readable string representation of the instruction
func (d *InstructionDescriptor) String() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v ", d.OpCode.Mnemonic))

	for i := range d.Operands {
		operand := d.Operands[i]

		builder.WriteString(operand.String())

		if i < len(d.Operands)-1 {
			builder.WriteString(", ")
		}
	}

	return builder.String()
}

// Returns the maximum number of bytes the instruction can be encoded with
func (d *InstructionDescriptor) MaxBytes() int {
	return utils.Accumulate(d.Layout, func(field utils.AsciiFrameField) int { return field.Width }) / utils.BitsPerByte
}

// Returns full documentation for the instruction
func (d *InstructionDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v (%v)\n\n", d.OpCode.Variant, d.OpCode.Pattern()))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("Encoding (up to %v bytes):\n\n", d.MaxBytes()))

	asciiFrame, err := utils.AsciiFrame(d.Layout, leftpad+2)
	if err != nil {
		panic(fmt.Errorf("error generating documentation for instruction %v: %w", d.OpCode, err))
	}

	builder.WriteString(asciiFrame)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Operands:\n\n")

	for i, operand := range d.Operands {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf(" [%v] %v: %v\n", i, operand, operand.Description))
	}

	return builder.String()
}
