package registers

import (
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"
)

type RegisterDescriptor struct {
	// Register class
	Class *RegisterClassDescriptor

	// Index within the register class. This is the 3 bit value found in reg and r/m fields
	Index int

	// Register name as written in assembly
	Name string

	// Register description (for documentation/debugging)
	Description string
}

func (d *RegisterDescriptor) String() string {
	return d.Name
}

// Returns the binary representation of the register within the reg/r/m fields
func (d *RegisterDescriptor) Encode() uint8 {
	return uint8(d.Index)
}

// Returns the value type of the register
func (d *RegisterDescriptor) ValueType() types.ValueType {
	return d.Class.ValueType
}

// Returns true if the register is 16 bits wide
func (d *RegisterDescriptor) IsWide() bool {
	return d.ValueType() == types.ValueType_Int16
}
