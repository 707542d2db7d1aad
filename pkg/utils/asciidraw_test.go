package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciiFrame_SingleByteSingleField(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "data", Width: 8},
	}

	actual, err := AsciiFrame(fields, 0)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		` byte 1
+------+
| data |
+------+
`,
		actual)
}

func TestAsciiFrame_ModRMLayout(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "100010", Width: 6},
		{Name: "d", Width: 1},
		{Name: "w", Width: 1},
		{Name: "mod", Width: 2},
		{Name: "reg", Width: 3},
		{Name: "r/m", Width: 3},
	}

	actual, err := AsciiFrame(fields, 0)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`      byte 1           byte 2
+--------+---+---+-----+-----+-----+
| 100010 | d | w | mod | reg | r/m |
+--------+---+---+-----+-----+-----+
`,
		actual)
}

func TestAsciiFrame_LeftPad(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "a", Width: 4},
		{Name: "b", Width: 4},
	}

	actual, err := AsciiFrame(fields, 2)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`   byte 1
  +---+---+
  | a | b |
  +---+---+
`,
		actual)
}

func TestAsciiFrame_FieldCrossingByteBoundary(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "opcode", Width: 6},
		{Name: "disp", Width: 8},
	}

	_, err := AsciiFrame(fields, 0)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestAsciiFrame_IncompleteByte(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "1011", Width: 4},
	}

	_, err := AsciiFrame(fields, 0)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}
