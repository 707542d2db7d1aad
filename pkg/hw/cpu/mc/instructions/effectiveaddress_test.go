package instructions

import (
	"testing"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/types"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveAddress_String(t *testing.T) {
	tests := []struct {
		address  EffectiveAddress
		expected string
	}{
		{EffectiveAddress{Base: EffectiveAddressBase_BX_SI}, "[bx + si]"},
		{EffectiveAddress{Base: EffectiveAddressBase_BP, Displacement: types.Int8(0), DisplacementBytes: 1}, "[bp]"},
		{EffectiveAddress{Base: EffectiveAddressBase_BX_DI, Displacement: types.Int8(12), DisplacementBytes: 1}, "[bx + di + 12]"},
		{EffectiveAddress{Base: EffectiveAddressBase_BX_DI, Displacement: types.Int8(-37), DisplacementBytes: 1}, "[bx + di - 37]"},
		{EffectiveAddress{Base: EffectiveAddressBase_SI, Displacement: types.Int16(-32768), DisplacementBytes: 2}, "[si - 32768]"},
		{EffectiveAddress{Base: EffectiveAddressBase_DI, Displacement: types.Int16(901), DisplacementBytes: 2}, "[di + 901]"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.address.String())
		})
	}
}

func TestDirectAddress_String(t *testing.T) {
	assert.Equal(t, "[0]", DirectAddress{}.String())
	assert.Equal(t, "[65535]", DirectAddress{Address: 0xFFFF}.String())
}

func TestModRM_Fields(t *testing.T) {
	modrm := ModRM(0b01_000_001)

	assert.Equal(t, Mode_MemoryDisplacement8, modrm.Mod())
	assert.Equal(t, byte(0b000), modrm.Reg())
	assert.Equal(t, byte(0b001), modrm.RM())
	assert.False(t, modrm.IsDirectAddress())
	assert.Equal(t, 1, modrm.DisplacementBytes())

	direct := ModRM(0b00_101_110)
	assert.True(t, direct.IsDirectAddress())
	assert.Equal(t, 2, direct.DisplacementBytes())

	assert.Equal(t, 0, ModRM(0b11_110_110).DisplacementBytes())
	assert.Equal(t, 2, ModRM(0b10_000_000).DisplacementBytes())
}
