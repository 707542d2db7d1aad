package instructions

// Represents the kind of operand (Register, immediate, etc)
type OperandKind uint

const (
	OperandKind_Register OperandKind = iota
	// Memory operand computed from base/index registers plus an optional displacement
	OperandKind_EffectiveAddress
	// Memory operand at an absolute 16 bit address
	OperandKind_DirectAddress
	OperandKind_Immediate
)

func (o OperandKind) String() string {
	switch o {
	case OperandKind_Register:
		return "Register"
	case OperandKind_EffectiveAddress:
		return "EffectiveAddress"
	case OperandKind_DirectAddress:
		return "DirectAddress"
	case OperandKind_Immediate:
		return "Immediate"
	}

	panic("unreachable")
}

// Returns true if the operand refers to memory
func (o OperandKind) IsMemory() bool {
	return o == OperandKind_EffectiveAddress || o == OperandKind_DirectAddress
}
