package mc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpProgram(t *testing.T) {
	p, err := Disassemble([]byte{0x89, 0xD9, 0x8B, 0x56, 0x00, 0x89, 0xDE})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, DumpProgram(&out, "listing.bin", p))

	dump := out.String()
	assert.Contains(t, dump, "=== Program ===")
	assert.Contains(t, dump, "Source:       listing.bin")
	assert.Contains(t, dump, "Size:         7 bytes")
	assert.Contains(t, dump, "Instructions: 3")
	assert.Contains(t, dump, "=== Instructions (3) ===")
	assert.Contains(t, dump, "0x0002  8B 56 00")
	assert.Contains(t, dump, "mov dx, [bp]  ; Register, EffectiveAddress")

	variants := dump[strings.Index(dump, "=== Variants ==="):strings.Index(dump, "=== Instructions")]
	assert.Contains(t, variants, "register/memory to/from register")
	assert.NotContains(t, variants, "immediate to register")
}

func TestDumpProgram_Empty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, DumpProgram(&out, "empty.bin", NewProgram()))

	dump := out.String()
	assert.Contains(t, dump, "Size:         0 bytes")
	assert.Contains(t, dump, "=== Instructions (0) ===\n(none)")
}
