package mc

import (
	"errors"
	"testing"

	"github.com/Manu343726/dis8086/pkg/hw/cpu"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, code ...byte) *instructions.Instruction {
	t.Helper()

	instr, _, err := instructions.Decode(code, 0)
	require.NoError(t, err)
	return instr
}

func TestNewProgram(t *testing.T) {
	p := NewProgram()
	assert.NotNil(t, p)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Size())
}

func TestProgram_Add(t *testing.T) {
	p := NewProgram()
	instr := decode(t, 0x89, 0xD9)

	result := p.Add(instr)

	assert.Same(t, p, result)
	assert.Equal(t, 1, p.Len())
	assert.Same(t, instr, p.At(0))
}

func TestProgram_Size(t *testing.T) {
	p := NewProgram()
	p.Add(decode(t, 0x89, 0xD9)).Add(decode(t, 0xBA, 0x6C, 0x0F))

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 5, p.Size())
}

func TestDisassemble(t *testing.T) {
	code := []byte{
		0x89, 0xD9, // mov cx, bx
		0xB1, 0x0C, // mov cl, 12
		0x8B, 0x56, 0x00, // mov dx, [bp]
		0xA1, 0xFB, 0x09, // mov ax, [2555]
		0xC7, 0x85, 0x85, 0x03, 0x5B, 0x01, // mov [di + 901], word 347
	}

	p, err := Disassemble(code)
	require.NoError(t, err)
	require.Equal(t, 5, p.Len())

	expected := []struct {
		offset int
		text   string
	}{
		{0, "mov cx, bx"},
		{2, "mov cl, 12"},
		{4, "mov dx, [bp]"},
		{7, "mov ax, [2555]"},
		{10, "mov [di + 901], word 347"},
	}

	for i, e := range expected {
		assert.Equal(t, e.offset, p.At(i).Offset, "instruction %v", i)
		assert.Equal(t, e.text, p.At(i).String(), "instruction %v", i)
	}

	assert.Equal(t, len(code), p.Size())
	assert.Equal(t, code, p.Encode())
}

func TestDisassemble_Empty(t *testing.T) {
	p, err := Disassemble(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.String())
}

func TestDisassemble_UnrecognizedOpCode(t *testing.T) {
	code := []byte{0x89, 0xD9, 0x0F, 0x89, 0xD9}

	p, err := Disassemble(code)
	require.Error(t, err)
	assert.True(t, errors.Is(err, instructions.ErrUnrecognizedOpCode))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Offset)
	assert.Contains(t, err.Error(), "offset 2")

	// Instructions before the failure are kept
	require.Equal(t, 1, p.Len())
	assert.Equal(t, "mov cx, bx", p.At(0).String())
}

func TestDisassemble_TruncatedInstruction(t *testing.T) {
	code := []byte{0x89, 0xD9, 0x8B, 0x86, 0x34}

	p, err := Disassemble(code)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpu.ErrBufferExhausted))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Offset)
	assert.Equal(t, 1, p.Len())
}

func TestDisassembler_NilLogger(t *testing.T) {
	d := NewDisassembler(nil)
	require.NotNil(t, d.Logger)

	p, err := d.Disassemble(cpu.MakeCode([]byte{0x88, 0xE5}))
	require.NoError(t, err)
	assert.Equal(t, "0000: mov ch, ah", p.String())
}
