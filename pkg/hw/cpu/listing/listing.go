package listing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/dis8086/pkg/utils"
)

// Directive emitted before the instructions so the assembler encodes them as 16 bit code
const BitsDirective = "bits 16"

// Format selects the listing output format
type Format int

const (
	// FormatAsm produces assembly source that reassembles to the input bytes
	FormatAsm Format = iota
	// FormatYAML produces a structured YAML document
	FormatYAML
	// FormatDump produces a detailed debugging representation
	FormatDump
)

var ErrInvalidFormat = errors.New("invalid output format")

var formats = map[string]Format{
	"asm":  FormatAsm,
	"yaml": FormatYAML,
	"dump": FormatDump,
}

func (f Format) String() string {
	for name, format := range formats {
		if format == f {
			return name
		}
	}

	return "unknown"
}

// Returns the format with the given name (asm, yaml, dump)
func ParseFormat(name string) (Format, error) {
	if format, ok := formats[strings.ToLower(strings.TrimSpace(name))]; ok {
		return format, nil
	}

	return FormatAsm, utils.MakeError(ErrInvalidFormat, "'%v' (expected one of %v)", name, strings.Join(utils.SortedKeys(formats), ", "))
}

// Options configures listing output
type Options struct {
	Format Format
	// Style controls whether assembly output is colorized. Ignored by the other formats
	Style FormatStyle
	// Offsets appends the offset of each instruction as a comment
	Offsets bool
	// Bytes appends the encoding of each instruction as a comment
	Bytes bool
	// Source is the name of the disassembled file, reported by the structured formats
	Source string
}

// Write renders the program with the given options
func Write(w io.Writer, p *mc.Program, opts Options) error {
	switch opts.Format {
	case FormatAsm:
		return WriteAsm(w, p, opts)
	case FormatYAML:
		return WriteYAML(w, p, opts)
	case FormatDump:
		return mc.DumpProgram(w, opts.Source, p)
	}

	return utils.MakeError(ErrInvalidFormat, "unknown format %d", int(opts.Format))
}

// Returns the annotation comment of an instruction, or an empty string if no annotations were requested
func annotation(offset int, encoding []byte, opts Options) string {
	var parts []string

	if opts.Offsets {
		parts = append(parts, utils.FormatUintHex(uint64(offset), 4))
	}

	if opts.Bytes {
		parts = append(parts, utils.FormatBytesHex(encoding))
	}

	return strings.Join(parts, ": ")
}

// WriteAsm writes the program as assembly source: the bits directive, a blank line and one
// instruction per line. Annotations are emitted as comments so the output still reassembles
func WriteAsm(w io.Writer, p *mc.Program, opts Options) error {
	formatter := NewInstructionFormatter(opts.Style)
	annotated := opts.Offsets || opts.Bytes

	// Pad on the plain text so colored and plain listings line up the same way
	width := 0
	if annotated && p.Len() > 0 {
		width = utils.Max(utils.Map(p.Instructions, func(instr *instructions.Instruction) int { return len(instr.String()) }))
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", BitsDirective); err != nil {
		return err
	}

	for _, instr := range p.Instructions {
		line := formatter.FormatInstruction(instr)

		if annotated {
			line += strings.Repeat(" ", width-len(instr.String())+1)
			line += formatter.FormatComment(annotation(instr.Offset, instr.Bytes, opts))
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
