package mc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
)

// Program represents a sequence of decoded instructions, in buffer order
type Program struct {
	Instructions []*instructions.Instruction
}

// NewProgram creates a new empty program
func NewProgram() *Program {
	return &Program{
		Instructions: make([]*instructions.Instruction, 0),
	}
}

// Add appends an instruction to the program
func (p *Program) Add(instr *instructions.Instruction) *Program {
	p.Instructions = append(p.Instructions, instr)
	return p
}

// Len returns the number of instructions in the program
func (p *Program) Len() int {
	return len(p.Instructions)
}

// At returns the instruction at the given index
func (p *Program) At(index int) *instructions.Instruction {
	return p.Instructions[index]
}

// Size returns the number of bytes the program instructions were encoded with
func (p *Program) Size() int {
	size := 0
	for _, instr := range p.Instructions {
		size += instr.Size()
	}
	return size
}

// String returns a human-readable representation of the program
func (p *Program) String() string {
	var builder strings.Builder
	for i, instr := range p.Instructions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("%04x: %s", instr.Offset, instr.String()))
	}
	return builder.String()
}

// Encode returns the concatenated encoding of all the program instructions
func (p *Program) Encode() []byte {
	result := make([]byte, 0, p.Size())
	for _, instr := range p.Instructions {
		result = append(result, instr.Bytes...)
	}
	return result
}

// DecodeError reports the buffer offset at which disassembly stopped
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding failed at offset %v (0x%04x): %v", e.Offset, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decodes whole machine code buffers into programs
type Disassembler struct {
	Logger *slog.Logger
}

// NewDisassembler creates a disassembler logging through the given logger. A nil logger
// means slog.Default()
func NewDisassembler(logger *slog.Logger) *Disassembler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Disassembler{Logger: logger}
}

// Disassemble decodes instructions from the start of the buffer until it is fully consumed.
//
// On failure the program decoded so far is returned together with a [*DecodeError] wrapping
// the decoder error.
func (d *Disassembler) Disassemble(code cpu.Code) (*Program, error) {
	program := NewProgram()
	offset := 0

	for offset < code.Len() {
		instr, consumed, err := instructions.Instructions.Decode(code, offset)
		if err != nil {
			d.Logger.Debug("decoding failed", "offset", offset, "decoded", program.Len(), "error", err)
			return program, &DecodeError{Offset: offset, Err: err}
		}

		d.Logger.Debug("decoded instruction", "offset", offset, "size", consumed, "instruction", instr.String())

		program.Add(instr)
		offset += consumed
	}

	d.Logger.Debug("disassembly finished", "instructions", program.Len(), "bytes", offset)

	return program, nil
}

// Disassemble decodes the whole buffer with a default disassembler. See [Disassembler.Disassemble]
func Disassemble(code []byte) (*Program, error) {
	return NewDisassembler(nil).Disassemble(cpu.MakeCode(code))
}
