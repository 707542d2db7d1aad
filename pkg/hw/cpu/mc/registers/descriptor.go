package registers

import "github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"

// Contains all the metadata describing the 8086 general purpose registers, indexed by their 3 bit encoding
var RegisterClasses RegisterClassesDescriptor = NewRegisterClassesDescriptor([]*RegisterClassDescriptor{
	ByteRegisters(),
	WordRegisters(),
})

// 8 bit registers descriptor (w = 0)
func ByteRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(
		&RegisterClassDescriptor{
			Class:       RegisterClass_Byte,
			Description: "8 bit halves of the ax, cx, dx and bx registers",
			ValueType:   types.ValueType_Int8,
		},
		[]*RegisterDescriptor{
			{Name: "al", Description: "Accumulator, low byte"},
			{Name: "cl", Description: "Count register, low byte"},
			{Name: "dl", Description: "Data register, low byte"},
			{Name: "bl", Description: "Base register, low byte"},
			{Name: "ah", Description: "Accumulator, high byte"},
			{Name: "ch", Description: "Count register, high byte"},
			{Name: "dh", Description: "Data register, high byte"},
			{Name: "bh", Description: "Base register, high byte"},
		},
	)
}

// 16 bit registers descriptor (w = 1)
func WordRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(
		&RegisterClassDescriptor{
			Class:       RegisterClass_Word,
			Description: "16 bit general purpose, pointer and index registers",
			ValueType:   types.ValueType_Int16,
		},
		[]*RegisterDescriptor{
			{Name: "ax", Description: "Accumulator"},
			{Name: "cx", Description: "Count register"},
			{Name: "dx", Description: "Data register"},
			{Name: "bx", Description: "Base register"},
			{Name: "sp", Description: "Stack pointer"},
			{Name: "bp", Description: "Base pointer"},
			{Name: "si", Description: "Source index"},
			{Name: "di", Description: "Destination index"},
		},
	)
}

// Returns the accumulator (al or ax) for the given width
func Accumulator(wide bool) *RegisterDescriptor {
	return RegisterClasses.Class(WidthRegisterClass(wide)).AllRegisters()[0]
}

// Returns a register descriptor by name, panics if no such register exists
func Register(name string) *RegisterDescriptor {
	reg, err := RegisterClasses.RegisterByName(name)

	if err != nil {
		panic(err)
	}

	return reg
}
