package instructions

import "github.com/Manu343726/dis8086/pkg/utils"

// Addressing mode, the mod field of a mod/reg/rm byte
type Mode byte

const (
	// Memory operand without displacement, except for the r/m = 110 direct address
	Mode_MemoryNoDisplacement Mode = 0b00
	// Memory operand with an 8 bit sign extended displacement
	Mode_MemoryDisplacement8 Mode = 0b01
	// Memory operand with a 16 bit displacement
	Mode_MemoryDisplacement16 Mode = 0b10
	// Both reg and r/m name registers
	Mode_Register Mode = 0b11
)

func (m Mode) String() string {
	switch m {
	case Mode_MemoryNoDisplacement:
		return "memory, no displacement"
	case Mode_MemoryDisplacement8:
		return "memory, 8 bit displacement"
	case Mode_MemoryDisplacement16:
		return "memory, 16 bit displacement"
	case Mode_Register:
		return "register"
	}

	panic("unreachable")
}

// The r/m value that, combined with Mode_MemoryNoDisplacement, selects a direct address
const directAddressRM byte = 0b110

// A mod/reg/rm addressing byte
type ModRM byte

func (b ModRM) Mod() Mode {
	return Mode(utils.ByteField(byte(b), 6, 2))
}

func (b ModRM) Reg() byte {
	return utils.ByteField(byte(b), 3, 3)
}

func (b ModRM) RM() byte {
	return utils.ByteField(byte(b), 0, 3)
}

// Returns true if the r/m field encodes a 16 bit direct address instead of a register based one
func (b ModRM) IsDirectAddress() bool {
	return b.Mod() == Mode_MemoryNoDisplacement && b.RM() == directAddressRM
}

// Returns the number of displacement bytes following the mod/reg/rm byte
func (b ModRM) DisplacementBytes() int {
	switch {
	case b.IsDirectAddress():
		return 2
	case b.Mod() == Mode_MemoryDisplacement8:
		return 1
	case b.Mod() == Mode_MemoryDisplacement16:
		return 2
	default:
		return 0
	}
}
