package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewDocument(t *testing.T) {
	p := disassemble(t, 0x89, 0xD9, 0xC7, 0x85, 0x85, 0x03, 0x5B, 0x01, 0xA1, 0xFB, 0x09)
	doc := NewDocument("listing.bin", p)

	assert.Equal(t, "listing.bin", doc.Source)
	assert.Equal(t, 16, doc.Bits)
	assert.Equal(t, 11, doc.Size)
	require.Len(t, doc.Instructions, 3)

	first := doc.Instructions[0]
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, "89 d9", first.Bytes)
	assert.Equal(t, "mov cx, bx", first.Text)
	assert.Equal(t, "Register", first.Destination.Kind)
	assert.Equal(t, "word", first.Destination.Size)
	assert.Nil(t, first.Destination.Value)

	second := doc.Instructions[1]
	assert.Equal(t, 2, second.Offset)
	assert.Equal(t, "immediate to register/memory", second.Variant)
	assert.Equal(t, "EffectiveAddress", second.Destination.Kind)
	require.NotNil(t, second.Destination.Value)
	assert.Equal(t, 901, *second.Destination.Value)
	assert.Equal(t, "Immediate", second.Source.Kind)
	assert.Equal(t, "word 347", second.Source.Text)
	require.NotNil(t, second.Source.Value)
	assert.Equal(t, 347, *second.Source.Value)

	third := doc.Instructions[2]
	assert.Equal(t, "DirectAddress", third.Source.Kind)
	require.NotNil(t, third.Source.Value)
	assert.Equal(t, 2555, *third.Source.Value)
}

func TestWriteYAML(t *testing.T) {
	p := disassemble(t, 0xB1, 0xF4)
	out := render(t, p, Options{Format: FormatYAML, Source: "negative.bin"})

	var decoded Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, NewDocument("negative.bin", p), decoded)

	assert.Contains(t, out, "text: mov cl, -12")
	assert.Contains(t, out, "  - offset: 0")
}

func TestWriteYAML_Empty(t *testing.T) {
	out := render(t, disassemble(t), Options{Format: FormatYAML})
	assert.Contains(t, out, "bits: 16")
	assert.Contains(t, out, "instructions: []")
	assert.NotContains(t, out, "source:")
}
