package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/registers"
)

// Contains implementation information about the machine code
type MachineCodeDescriptor struct {
	// Information about instruction opcodes
	OpCodes *instructions.OpCodesDescriptor
	// Information about machine instructions
	Instructions *instructions.InstructionsDescriptor
	// Information about machine registers classes
	RegisterClasses *registers.RegisterClassesDescriptor
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported opcodes: %v\n", d.OpCodes.TotalOpCodes()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total implemented instructions: %v\n", len(d.Instructions.AllInstructions())))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("register classes: %v\n\n", len(d.RegisterClasses.AllClasses())))

	builder.WriteString(leftpad_str)
	builder.WriteString("Registers (reg and r/m fields):\n\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("  field")

	for _, class := range d.RegisterClasses.AllClasses() {
		builder.WriteString(fmt.Sprintf("  %-16v", class.Class))
	}

	builder.WriteString("\n")

	for field := range registers.TotalRegistersPerClass {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %03b  ", field))

		for _, class := range d.RegisterClasses.AllClasses() {
			register, _ := class.Register(field)
			builder.WriteString(fmt.Sprintf("  %-16v", register))
		}

		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Effective addresses (r/m field, mod != 11):\n\n")

	for rm := range registers.TotalRegistersPerClass {
		base := instructions.EffectiveAddressBase(rm)
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  %03b  [%v]", rm, base))

		if base == instructions.EffectiveAddressBase_BP {
			builder.WriteString(" (direct 16 bit address when mod = 00)")
		}

		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Opcodes (matched in this order):\n\n")

	for _, opCode := range d.OpCodes.AllOpCodes() {
		builder.WriteString(fmt.Sprintf("%v - %v\n", leftpad_str, opCode))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Instructions:\n\n")

	for _, instruction := range d.Instructions.AllInstructions() {
		builder.WriteString(instruction.Documentation(leftpad + 2))
		builder.WriteString("\n")
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() string {
	return d.Documentation(0)
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		OpCodes:         &instructions.Opcodes,
		Instructions:    &instructions.Instructions,
		RegisterClasses: &registers.RegisterClasses,
	}
}

// Contains implementation information about the machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
