package registers

type RegisterClass uint

const (
	// 8 bit general purpose registers, the halves of ax, cx, dx and bx
	RegisterClass_Byte RegisterClass = iota

	// 16 bit general purpose, pointer and index registers
	RegisterClass_Word

	// Number of register classes
	TOTAL_REGISTER_CLASSES
)

// Number of registers addressable by a 3 bit reg or r/m field
const TotalRegistersPerClass = 8

func (rc RegisterClass) String() string {
	switch rc {
	case RegisterClass_Byte:
		return "byte registers"
	case RegisterClass_Word:
		return "word registers"
	}

	panic("unreachable")
}

// Returns the register class selected by an instruction width (w) bit
func WidthRegisterClass(wide bool) RegisterClass {
	if wide {
		return RegisterClass_Word
	}

	return RegisterClass_Byte
}
