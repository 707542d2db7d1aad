package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"
)

// Base/index register combination selected by the r/m field of a memory operand
type EffectiveAddressBase byte

const (
	EffectiveAddressBase_BX_SI EffectiveAddressBase = iota
	EffectiveAddressBase_BX_DI
	EffectiveAddressBase_BP_SI
	EffectiveAddressBase_BP_DI
	EffectiveAddressBase_SI
	EffectiveAddressBase_DI
	EffectiveAddressBase_BP
	EffectiveAddressBase_BX
)

var effectiveAddressBases = [...]string{
	EffectiveAddressBase_BX_SI: "bx + si",
	EffectiveAddressBase_BX_DI: "bx + di",
	EffectiveAddressBase_BP_SI: "bp + si",
	EffectiveAddressBase_BP_DI: "bp + di",
	EffectiveAddressBase_SI:    "si",
	EffectiveAddressBase_DI:    "di",
	EffectiveAddressBase_BP:    "bp",
	EffectiveAddressBase_BX:    "bx",
}

func (b EffectiveAddressBase) String() string {
	return effectiveAddressBases[b&0b111]
}

// Memory operand computed as base/index registers plus a signed displacement
type EffectiveAddress struct {
	Base EffectiveAddressBase
	// Displacement as encoded. Zero valued when the addressing mode has no displacement
	Displacement types.Value
	// Number of displacement bytes the operand was encoded with (0, 1 or 2)
	DisplacementBytes int
}

func (a EffectiveAddress) String() string {
	var builder strings.Builder

	builder.WriteString("[")
	builder.WriteString(a.Base.String())

	if displacement := a.Displacement.Int(); displacement > 0 {
		fmt.Fprintf(&builder, " + %d", displacement)
	} else if displacement < 0 {
		fmt.Fprintf(&builder, " - %d", -displacement)
	}

	builder.WriteString("]")
	return builder.String()
}

// Memory operand at an absolute address (mod = 00, r/m = 110, or the accumulator moves)
type DirectAddress struct {
	Address uint16
}

func (a DirectAddress) String() string {
	return fmt.Sprintf("[%d]", a.Address)
}
