package listing

import (
	"errors"
	"testing"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	for name, expected := range map[string]ColorMode{
		"auto":   ColorAuto,
		"Always": ColorAlways,
		"never":  ColorNever,
	} {
		mode, err := ParseColorMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, mode, name)
	}

	_, err := ParseColorMode("sometimes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColorMode))
}

func TestColorMode_Style(t *testing.T) {
	assert.Equal(t, StyleColored, ColorAuto.Style(true))
	assert.Equal(t, StylePlain, ColorAuto.Style(false))
	assert.Equal(t, StyleColored, ColorAlways.Style(false))
	assert.Equal(t, StylePlain, ColorNever.Style(true))
}

func TestColorMode_String(t *testing.T) {
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
}

func TestInstructionFormatter_Plain(t *testing.T) {
	tests := []struct {
		code     []byte
		expected string
	}{
		{[]byte{0x89, 0xD9}, "mov cx, bx"},
		{[]byte{0xC6, 0x03, 0x07}, "mov [bp + di], byte 7"},
		{[]byte{0xA3, 0x0F, 0x00}, "mov [15], ax"},
		{[]byte{0x8B, 0x41, 0xDB}, "mov ax, [bx + di - 37]"},
	}

	formatter := NewInstructionFormatter(StylePlain)

	for _, tt := range tests {
		instr, _, err := instructions.Decode(tt.code, 0)
		require.NoError(t, err)

		assert.Equal(t, tt.expected, formatter.FormatInstruction(instr))
		assert.Equal(t, instr.String(), formatter.FormatInstruction(instr))
	}

	assert.Equal(t, "; 89 d9", formatter.FormatComment("89 d9"))
}

func TestInstructionFormatter_Colored(t *testing.T) {
	instr, _, err := instructions.Decode([]byte{0xC6, 0x03, 0x07}, 0)
	require.NoError(t, err)

	palette := DefaultPalette()
	formatter := NewInstructionFormatterWithPalette(StyleColored, palette)
	assert.Equal(t, StyleColored, formatter.Style())

	out := formatter.FormatInstruction(instr)
	assert.Contains(t, out, palette.Mnemonic.Sprint("mov"))
	assert.Contains(t, out, palette.Memory.Sprint("[bp + di]"))
	assert.Contains(t, out, palette.Size.Sprint("byte"))
	assert.Contains(t, out, palette.Immediate.Sprint("7"))
	assert.NotEqual(t, instr.String(), out)
}
