package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_ByteAt(t *testing.T) {
	code := MakeCode([]byte{0x89, 0xD9})

	b, err := code.ByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x89), b)

	b, err = code.ByteAt(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xD9), b)

	_, err = code.ByteAt(2)
	assert.ErrorIs(t, err, ErrBufferExhausted)

	_, err = code.ByteAt(-1)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCode_WordAt(t *testing.T) {
	code := MakeCode([]byte{0xB9, 0x0C, 0x00})

	word, err := code.WordAt(1)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), word)

	_, err = code.WordAt(2)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCode_SliceAliasesBuffer(t *testing.T) {
	buffer := []byte{0x8B, 0x41, 0x0C, 0x90}
	code := MakeCode(buffer)

	slice, err := code.Slice(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x8B, 0x41, 0x0C}, slice)
	assert.Same(t, &buffer[0], &slice[0])
	assert.Equal(t, 3, cap(slice))

	_, err = code.Slice(2, 3)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCode_EmptyBuffer(t *testing.T) {
	code := MakeCode(nil)

	assert.Equal(t, 0, code.Len())
	_, err := code.ByteAt(0)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}
