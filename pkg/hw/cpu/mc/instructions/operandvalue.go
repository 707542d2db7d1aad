package instructions

import (
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"
)

// Stores the value of an instruction operand. Exactly one of the fields is set
type OperandValue struct {
	register         *registers.RegisterDescriptor
	effectiveAddress *EffectiveAddress
	directAddress    *DirectAddress
	immediate        *types.Value
	// Immediates written to memory need an explicit size keyword, there is no register to infer it from
	explicitSize bool
}

// Returns the kind of operand this value refers to
func (v *OperandValue) Kind() OperandKind {
	switch {
	case v.register != nil:
		return OperandKind_Register
	case v.effectiveAddress != nil:
		return OperandKind_EffectiveAddress
	case v.directAddress != nil:
		return OperandKind_DirectAddress
	case v.immediate != nil:
		return OperandKind_Immediate
	}

	panic("unreachable")
}

// Returns the assembly representation of the operand value
func (v *OperandValue) String() string {
	switch v.Kind() {
	case OperandKind_Register:
		return v.register.Name
	case OperandKind_EffectiveAddress:
		return v.effectiveAddress.String()
	case OperandKind_DirectAddress:
		return v.directAddress.String()
	case OperandKind_Immediate:
		if v.explicitSize {
			return v.immediate.Type().SizeKeyword() + " " + v.immediate.String()
		}
		return v.immediate.String()
	}

	panic("unreachable")
}

func (v *OperandValue) Register() *registers.RegisterDescriptor {
	if v.register != nil {
		return v.register
	}

	panic("operand value is not a register")
}

func (v *OperandValue) EffectiveAddress() EffectiveAddress {
	if v.effectiveAddress != nil {
		return *v.effectiveAddress
	}

	panic("operand value is not an effective address")
}

func (v *OperandValue) DirectAddress() DirectAddress {
	if v.directAddress != nil {
		return *v.directAddress
	}

	panic("operand value is not a direct address")
}

func (v *OperandValue) Immediate() types.Value {
	if v.immediate != nil {
		return *v.immediate
	}

	panic("operand value is not an immediate")
}

// Returns true if the immediate is rendered with a byte/word size keyword
func (v *OperandValue) HasExplicitSize() bool {
	return v.explicitSize
}

// Returns a register operand value
func RegisterOperandValue(register *registers.RegisterDescriptor) OperandValue {
	return OperandValue{
		register: register,
	}
}

// Returns a base/index register memory operand value
func EffectiveAddressOperandValue(address EffectiveAddress) OperandValue {
	return OperandValue{
		effectiveAddress: &address,
	}
}

// Returns an absolute address memory operand value
func DirectAddressOperandValue(address uint16) OperandValue {
	return OperandValue{
		directAddress: &DirectAddress{Address: address},
	}
}

// Returns an immediate operand value
func ImmediateValue(value types.Value) OperandValue {
	return OperandValue{
		immediate: &value,
	}
}

// Returns an immediate operand value rendered with its byte/word size keyword
func SizedImmediateValue(value types.Value) OperandValue {
	return OperandValue{
		immediate:    &value,
		explicitSize: true,
	}
}
