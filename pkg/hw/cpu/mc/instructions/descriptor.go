package instructions

import (
	"github.com/Manu343726/dis8086/pkg/utils"
)

var Opcodes OpCodesDescriptor = NewOpCodesDescriptor([]*OpCodeDescriptor{
	{
		OpCode:               OpCode_MOV_REGMEM_REG,
		BinaryRepresentation: 0b1000_1000,
		Mask:                 0b1111_1100,
		Mnemonic:             "mov",
		Variant:              "register/memory to/from register",
	},
	{
		OpCode:               OpCode_MOV_IMM_REGMEM,
		BinaryRepresentation: 0b1100_0110,
		Mask:                 0b1111_1110,
		Mnemonic:             "mov",
		Variant:              "immediate to register/memory",
	},
	{
		OpCode:               OpCode_MOV_IMM_REG,
		BinaryRepresentation: 0b1011_0000,
		Mask:                 0b1111_0000,
		Mnemonic:             "mov",
		Variant:              "immediate to register",
	},
	{
		OpCode:               OpCode_MOV_MEM_ACC,
		BinaryRepresentation: 0b1010_0000,
		Mask:                 0b1111_1110,
		Mnemonic:             "mov",
		Variant:              "memory to accumulator",
	},
	{
		OpCode:               OpCode_MOV_ACC_MEM,
		BinaryRepresentation: 0b1010_0010,
		Mask:                 0b1111_1110,
		Mnemonic:             "mov",
		Variant:              "accumulator to memory",
	},
})

var Instructions InstructionsDescriptor = NewInstructionsDescriptor([]*InstructionDescriptor{
	MovRegisterMemoryToFromRegister(),
	MovImmediateToRegisterMemory(),
	MovImmediateToRegister(),
	MovMemoryToAccumulator(),
	MovAccumulatorToMemory(),
})

func opcodeField(op OpCode) utils.AsciiFrameField {
	descriptor := Opcodes.Descriptor(op)

	return utils.AsciiFrameField{
		Name:  descriptor.Pattern(),
		Width: descriptor.EncodingBits(),
	}
}

var (
	modRMFields = []utils.AsciiFrameField{
		{Name: "mod", Width: 2},
		{Name: "reg", Width: 3},
		{Name: "r/m", Width: 3},
	}
	displacementFields = []utils.AsciiFrameField{
		{Name: "(disp-lo)", Width: 8},
		{Name: "(disp-hi)", Width: 8},
	}
	dataFields = []utils.AsciiFrameField{
		{Name: "data", Width: 8},
		{Name: "(data if w=1)", Width: 8},
	}
	addressFields = []utils.AsciiFrameField{
		{Name: "addr-lo", Width: 8},
		{Name: "addr-hi", Width: 8},
	}
)

func layout(groups ...[]utils.AsciiFrameField) []utils.AsciiFrameField {
	var result []utils.AsciiFrameField

	for _, group := range groups {
		result = append(result, group...)
	}

	return result
}

var registerOrMemory = []OperandKind{OperandKind_Register, OperandKind_EffectiveAddress, OperandKind_DirectAddress}

func MovRegisterMemoryToFromRegister() *InstructionDescriptor {
	return &InstructionDescriptor{
		OpCode:      Opcodes.Descriptor(OpCode_MOV_REGMEM_REG),
		Description: "Copies a register or memory operand into a register (d = 1), or a register into a register or memory operand (d = 0). w selects 8 or 16 bit registers",
		Operands: []*OperandDescriptor{
			{
				Role:        OperandRole_Destination,
				Kinds:       registerOrMemory,
				Description: "reg field if d = 1, r/m field otherwise",
			},
			{
				Role:        OperandRole_Source,
				Kinds:       registerOrMemory,
				Description: "r/m field if d = 1, reg field otherwise",
			},
		},
		Layout: layout(
			[]utils.AsciiFrameField{opcodeField(OpCode_MOV_REGMEM_REG), {Name: "d", Width: 1}, {Name: "w", Width: 1}},
			modRMFields,
			displacementFields,
		),
		decode: decodeRegisterMemoryToFromRegister,
	}
}

func MovImmediateToRegisterMemory() *InstructionDescriptor {
	return &InstructionDescriptor{
		OpCode:      Opcodes.Descriptor(OpCode_MOV_IMM_REGMEM),
		Description: "Copies an 8 or 16 bit immediate into a register or memory operand. Memory destinations are written with an explicit byte/word size",
		Operands: []*OperandDescriptor{
			{
				Role:        OperandRole_Destination,
				Kinds:       registerOrMemory,
				Description: "r/m field",
			},
			{
				Role:        OperandRole_Source,
				Kinds:       []OperandKind{OperandKind_Immediate},
				Description: "immediate following the displacement, little endian",
			},
		},
		Layout: layout(
			[]utils.AsciiFrameField{opcodeField(OpCode_MOV_IMM_REGMEM), {Name: "w", Width: 1}},
			[]utils.AsciiFrameField{{Name: "mod", Width: 2}, {Name: "000", Width: 3}, {Name: "r/m", Width: 3}},
			displacementFields,
			dataFields,
		),
		decode: decodeImmediateToRegisterMemory,
	}
}

func MovImmediateToRegister() *InstructionDescriptor {
	return &InstructionDescriptor{
		OpCode:      Opcodes.Descriptor(OpCode_MOV_IMM_REG),
		Description: "Copies an 8 (w = 0) or 16 (w = 1) bit immediate into the register encoded in the first byte",
		Operands: []*OperandDescriptor{
			{
				Role:        OperandRole_Destination,
				Kinds:       []OperandKind{OperandKind_Register},
				Description: "reg field of the first byte",
			},
			{
				Role:        OperandRole_Source,
				Kinds:       []OperandKind{OperandKind_Immediate},
				Description: "immediate, little endian",
			},
		},
		Layout: layout(
			[]utils.AsciiFrameField{opcodeField(OpCode_MOV_IMM_REG), {Name: "w", Width: 1}, {Name: "reg", Width: 3}},
			dataFields,
		),
		decode: decodeImmediateToRegister,
	}
}

func MovMemoryToAccumulator() *InstructionDescriptor {
	return &InstructionDescriptor{
		OpCode:      Opcodes.Descriptor(OpCode_MOV_MEM_ACC),
		Description: "Copies the byte or word at a direct address into al or ax",
		Operands: []*OperandDescriptor{
			{
				Role:        OperandRole_Destination,
				Kinds:       []OperandKind{OperandKind_Register},
				Description: "al if w = 0, ax otherwise",
			},
			{
				Role:        OperandRole_Source,
				Kinds:       []OperandKind{OperandKind_DirectAddress},
				Description: "16 bit address, little endian",
			},
		},
		Layout: layout(
			[]utils.AsciiFrameField{opcodeField(OpCode_MOV_MEM_ACC), {Name: "w", Width: 1}},
			addressFields,
		),
		decode: decodeMemoryToAccumulator,
	}
}

func MovAccumulatorToMemory() *InstructionDescriptor {
	return &InstructionDescriptor{
		OpCode:      Opcodes.Descriptor(OpCode_MOV_ACC_MEM),
		Description: "Copies al or ax into the byte or word at a direct address",
		Operands: []*OperandDescriptor{
			{
				Role:        OperandRole_Destination,
				Kinds:       []OperandKind{OperandKind_DirectAddress},
				Description: "16 bit address, little endian",
			},
			{
				Role:        OperandRole_Source,
				Kinds:       []OperandKind{OperandKind_Register},
				Description: "al if w = 0, ax otherwise",
			},
		},
		Layout: layout(
			[]utils.AsciiFrameField{opcodeField(OpCode_MOV_ACC_MEM), {Name: "w", Width: 1}},
			addressFields,
		),
		decode: decodeAccumulatorToMemory,
	}
}
