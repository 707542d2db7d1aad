package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu"
	"github.com/Manu343726/dis8086/pkg/utils"
)

// Constains information about all implemented instructions
type InstructionsDescriptor struct {
	instructions map[OpCode]*InstructionDescriptor
}

// Returns all implemented instructions, in opcode matching order
func (d *InstructionsDescriptor) AllInstructions() []*InstructionDescriptor {
	return utils.Map(Opcodes.AllOpCodes(), func(op *OpCodeDescriptor) *InstructionDescriptor {
		return d.instructions[op.OpCode]
	})
}

var ErrInstructionNotImplemented = errors.New("instruction not implemented")

// Returns the instruction corresponding to the given opcode
func (d *InstructionsDescriptor) Instruction(op OpCode) (*InstructionDescriptor, error) {
	if instruction, hasInstruction := d.instructions[op]; hasInstruction {
		return instruction, nil
	} else {
		return nil, utils.MakeError(ErrInstructionNotImplemented, "no instruction implemented for opcode '%v'", op)
	}
}

// Returns the documentation of all implemented instructions
func (d *InstructionsDescriptor) DocString() string {
	var builder strings.Builder

	builder.WriteString("8086 move instructions\n\n")
	builder.WriteString("Opcodes are matched from the most general mask to the most specific one:\n\n")

	for _, op := range Opcodes.AllOpCodes() {
		builder.WriteString(fmt.Sprintf("  %-8v %v\n", op.Pattern(), op.Variant))
	}

	for _, instruction := range d.AllInstructions() {
		builder.WriteString("\n")
		builder.WriteString(instruction.Documentation(0))
	}

	return builder.String()
}

// Initializes an instructions descriptor with all the given instructions
func NewInstructionsDescriptor(instructions []*InstructionDescriptor) InstructionsDescriptor {
	d := InstructionsDescriptor{
		instructions: utils.GenMap(instructions, func(i *InstructionDescriptor) OpCode { return i.OpCode.OpCode }),
	}

	for _, op := range Opcodes.AllOpCodes() {
		instruction, hasInstruction := d.instructions[op.OpCode]
		if !hasInstruction {
			panic(fmt.Errorf("missing instruction descriptor for opcode %v", op))
		}

		if instruction.decode == nil {
			panic(fmt.Errorf("instruction '%v' has no decoder", op))
		}

		if _, err := utils.AsciiFrame(instruction.Layout, 0); err != nil {
			panic(fmt.Errorf("instruction '%v' has an invalid encoding layout: %w", op, err))
		}
	}

	return d
}

// Decodes the instruction starting at the given position. Returns the instruction and the number of bytes it was encoded with.
//
// Decoding never reads past the bytes the instruction encoding declares, and fails with
// [cpu.ErrBufferExhausted] if the buffer ends before them.
func (d *InstructionsDescriptor) Decode(code cpu.Code, position int) (*Instruction, int, error) {
	byte1, err := code.ByteAt(position)
	if err != nil {
		return nil, 0, err
	}

	opCode, err := Opcodes.Match(byte1)
	if err != nil {
		return nil, 0, err
	}

	descriptor, err := d.Instruction(opCode.OpCode)
	if err != nil {
		return nil, 0, err
	}

	ctx := decodeContext{
		code:     code,
		position: position,
		consumed: 1,
	}

	destination, source, err := descriptor.decode(&ctx, byte1)
	if err != nil {
		return nil, 0, err
	}

	raw, err := code.Slice(position, ctx.consumed)
	if err != nil {
		return nil, 0, err
	}

	return &Instruction{
		Descriptor:  descriptor,
		Offset:      position,
		Bytes:       raw,
		Destination: destination,
		Source:      source,
	}, ctx.consumed, nil
}

// Decodes the instruction starting at the given position of the buffer. See [InstructionsDescriptor.Decode]
func Decode(code []byte, position int) (*Instruction, int, error) {
	return Instructions.Decode(cpu.MakeCode(code), position)
}
