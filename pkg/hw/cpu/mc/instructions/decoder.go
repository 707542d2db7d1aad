package instructions

import (
	"github.com/Manu343726/dis8086/pkg/hw/cpu"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/dis8086/pkg/utils"
)

// Tracks the bytes read while decoding a single instruction
type decodeContext struct {
	code     cpu.Code
	position int
	consumed int
}

func (c *decodeContext) nextByte() (byte, error) {
	b, err := c.code.ByteAt(c.position + c.consumed)
	if err != nil {
		return 0, err
	}

	c.consumed++
	return b, nil
}

func (c *decodeContext) nextWord() (uint16, error) {
	word, err := c.code.WordAt(c.position + c.consumed)
	if err != nil {
		return 0, err
	}

	c.consumed += 2
	return word, nil
}

// Reads a little endian value of the given type
func (c *decodeContext) nextValue(valueType types.ValueType) (types.Value, error) {
	switch valueType {
	case types.ValueType_Int8:
		b, err := c.nextByte()
		return types.Decode(uint16(b), valueType), err
	case types.ValueType_Int16:
		word, err := c.nextWord()
		return types.Decode(word, valueType), err
	}

	panic("unreachable")
}

func (c *decodeContext) nextModRM() (ModRM, error) {
	b, err := c.nextByte()
	return ModRM(b), err
}

// Resolves the r/m operand, reading any displacement bytes the addressing mode requires
func (c *decodeContext) registerOrMemory(modrm ModRM, wide bool) (OperandValue, error) {
	if modrm.Mod() == Mode_Register {
		register, err := registers.RegisterClasses.DecodeRegister(modrm.RM(), wide)
		if err != nil {
			return OperandValue{}, err
		}

		return RegisterOperandValue(register), nil
	}

	if modrm.IsDirectAddress() {
		address, err := c.nextWord()
		if err != nil {
			return OperandValue{}, err
		}

		return DirectAddressOperandValue(address), nil
	}

	address := EffectiveAddress{
		Base:              EffectiveAddressBase(modrm.RM()),
		DisplacementBytes: modrm.DisplacementBytes(),
	}

	switch modrm.Mod() {
	case Mode_MemoryDisplacement8:
		displacement, err := c.nextValue(types.ValueType_Int8)
		if err != nil {
			return OperandValue{}, err
		}
		address.Displacement = displacement
	case Mode_MemoryDisplacement16:
		displacement, err := c.nextValue(types.ValueType_Int16)
		if err != nil {
			return OperandValue{}, err
		}
		address.Displacement = displacement
	}

	return EffectiveAddressOperandValue(address), nil
}

func widthBit(byte1 byte, bit int) bool {
	return utils.ByteField(byte1, bit, 1) == 1
}

// 100010dw mod|reg|r/m [disp-lo] [disp-hi]
func decodeRegisterMemoryToFromRegister(ctx *decodeContext, byte1 byte) (OperandValue, OperandValue, error) {
	regIsDestination := utils.ByteField(byte1, 1, 1) == 1
	wide := widthBit(byte1, 0)

	modrm, err := ctx.nextModRM()
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	register, err := registers.RegisterClasses.DecodeRegister(modrm.Reg(), wide)
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	rm, err := ctx.registerOrMemory(modrm, wide)
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	if regIsDestination {
		return RegisterOperandValue(register), rm, nil
	}

	return rm, RegisterOperandValue(register), nil
}

// 1100011w mod|000|r/m [disp-lo] [disp-hi] data [data if w = 1]
func decodeImmediateToRegisterMemory(ctx *decodeContext, byte1 byte) (OperandValue, OperandValue, error) {
	wide := widthBit(byte1, 0)

	modrm, err := ctx.nextModRM()
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	if modrm.Reg() != 0 {
		return OperandValue{}, OperandValue{}, utils.MakeError(ErrUnrecognizedOpCode, "%v with reg field %v (must be 000)",
			utils.FormatUintHex(uint64(byte1), 2), utils.FormatUintBinary(uint64(modrm.Reg()), 3))
	}

	destination, err := ctx.registerOrMemory(modrm, wide)
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	immediate, err := ctx.nextValue(types.WidthValueType(wide))
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	if destination.Kind().IsMemory() {
		return destination, SizedImmediateValue(immediate), nil
	}

	return destination, ImmediateValue(immediate), nil
}

// 1011wreg data [data if w = 1]
func decodeImmediateToRegister(ctx *decodeContext, byte1 byte) (OperandValue, OperandValue, error) {
	wide := widthBit(byte1, 3)

	register, err := registers.RegisterClasses.DecodeRegister(utils.ByteField(byte1, 0, 3), wide)
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	immediate, err := ctx.nextValue(types.WidthValueType(wide))
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	return RegisterOperandValue(register), ImmediateValue(immediate), nil
}

// 1010000w addr-lo addr-hi
func decodeMemoryToAccumulator(ctx *decodeContext, byte1 byte) (OperandValue, OperandValue, error) {
	address, err := ctx.nextWord()
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	return RegisterOperandValue(registers.Accumulator(widthBit(byte1, 0))), DirectAddressOperandValue(address), nil
}

// 1010001w addr-lo addr-hi
func decodeAccumulatorToMemory(ctx *decodeContext, byte1 byte) (OperandValue, OperandValue, error) {
	address, err := ctx.nextWord()
	if err != nil {
		return OperandValue{}, OperandValue{}, err
	}

	return DirectAddressOperandValue(address), RegisterOperandValue(registers.Accumulator(widthBit(byte1, 0))), nil
}
