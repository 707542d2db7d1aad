package instructions

import (
	"fmt"

	"github.com/Manu343726/dis8086/pkg/utils"
)

// Contains information about an instruction operand
type OperandDescriptor struct {
	// Role the operand takes in the instruction
	Role OperandRole
	// Kinds of operand values the encoding can produce for this operand
	Kinds []OperandKind
	// Operand description (for documentation and debugging)
	Description string
}

// Returns true if the operand may be decoded as the given kind
func (o *OperandDescriptor) Accepts(kind OperandKind) bool {
	for _, k := range o.Kinds {
		if k == kind {
			return true
		}
	}

	return false
}

// Returns an human readable string describing the operand (See [InstructionDescriptor.Documentation])
func (o *OperandDescriptor) String() string {
	return fmt.Sprintf("<%v:%v>", o.Role, utils.FormatSlice(o.Kinds, "|"))
}
