package mc

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
)

// DumpProgram writes a detailed debugging representation of a decoded program to the given writer.
// This output is intended for debugging and inspection, not for parsing.
func DumpProgram(w io.Writer, source string, p *Program) error {
	d := &programDumper{w: w, source: source, p: p}
	return d.dump()
}

type programDumper struct {
	w      io.Writer
	source string
	p      *Program
}

func (d *programDumper) dump() error {
	if err := d.dumpHeader(); err != nil {
		return err
	}
	if err := d.dumpVariants(); err != nil {
		return err
	}
	return d.dumpInstructions()
}

func (d *programDumper) dumpHeader() error {
	if _, err := fmt.Fprintln(d.w, "=== Program ==="); err != nil {
		return err
	}
	fmt.Fprintf(d.w, "Source:       %s\n", d.source)
	fmt.Fprintf(d.w, "Size:         %d bytes\n", d.p.Size())
	fmt.Fprintf(d.w, "Instructions: %d\n", d.p.Len())
	_, err := fmt.Fprintln(d.w)
	return err
}

func (d *programDumper) dumpVariants() error {
	counts := make(map[instructions.OpCode]int)
	for _, instr := range d.p.Instructions {
		counts[instr.Descriptor.OpCode.OpCode]++
	}

	fmt.Fprintln(d.w, "=== Variants ===")

	// Opcode table order for deterministic output
	for _, op := range Descriptor.OpCodes.AllOpCodes() {
		if count, ok := counts[op.OpCode]; ok {
			fmt.Fprintf(d.w, "  %-8s %-36s %d\n", op.Pattern(), op.Variant, count)
		}
	}

	if len(counts) == 0 {
		fmt.Fprintln(d.w, "(none)")
	}

	_, err := fmt.Fprintln(d.w)
	return err
}

func (d *programDumper) dumpInstructions() error {
	fmt.Fprintf(d.w, "=== Instructions (%d) ===\n", d.p.Len())

	if d.p.Len() == 0 {
		_, err := fmt.Fprintln(d.w, "(none)")
		return err
	}

	for i, instr := range d.p.Instructions {
		fmt.Fprintf(d.w, "  [%4d] 0x%04X  %-17s  %s", i, instr.Offset, formatBytes(instr.Bytes), instr.String())

		fmt.Fprint(d.w, "  ; ")
		for j, operand := range instr.Operands() {
			if j > 0 {
				fmt.Fprint(d.w, ", ")
			}
			fmt.Fprint(d.w, operand.Kind())
		}

		if _, err := fmt.Fprintln(d.w); err != nil {
			return err
		}
	}
	return nil
}

func formatBytes(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var sb strings.Builder

	for i, b := range data {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%02X", b))
	}

	return sb.String()
}
