package listing

import (
	"errors"
	"strings"
	"testing"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manyRegisterMov = []byte{
	0x89, 0xD9, 0x88, 0xE5, 0x89, 0xDA, 0x89, 0xDE, 0x89, 0xFB, 0x88, 0xC8,
	0x88, 0xED, 0x89, 0xC3, 0x89, 0xF3, 0x89, 0xFC, 0x89, 0xC5,
}

func disassemble(t *testing.T, code ...byte) *mc.Program {
	t.Helper()

	p, err := mc.Disassemble(code)
	require.NoError(t, err)
	return p
}

func render(t *testing.T, p *mc.Program, opts Options) string {
	t.Helper()

	var out strings.Builder
	require.NoError(t, Write(&out, p, opts))
	return out.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"asm", FormatAsm},
		{"YAML", FormatYAML},
		{" dump ", FormatDump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	_, err := ParseFormat("intel")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.Contains(t, err.Error(), "asm, dump, yaml")
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "asm", FormatAsm.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "dump", FormatDump.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestWriteAsm_SingleRegisterMov(t *testing.T) {
	out := render(t, disassemble(t, 0x89, 0xD9), Options{})
	assert.Equal(t, "bits 16\n\nmov cx, bx\n", out)
}

func TestWriteAsm_ManyRegisterMov(t *testing.T) {
	out := render(t, disassemble(t, manyRegisterMov...), Options{})

	expected := `bits 16

mov cx, bx
mov ch, ah
mov dx, bx
mov si, bx
mov bx, di
mov al, cl
mov ch, ch
mov bx, ax
mov bx, si
mov sp, di
mov bp, ax
`
	assert.Equal(t, expected, out)
}

func TestWriteAsm_Empty(t *testing.T) {
	assert.Equal(t, "bits 16\n\n", render(t, mc.NewProgram(), Options{}))
	assert.Equal(t, "bits 16\n\n", render(t, mc.NewProgram(), Options{Offsets: true, Bytes: true}))
}

func TestWriteAsm_Annotations(t *testing.T) {
	p := disassemble(t, 0x89, 0xD9, 0xB1, 0x0C, 0x8B, 0x56, 0x00)

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name: "offsets",
			opts: Options{Offsets: true},
			expected: "bits 16\n\n" +
				"mov cx, bx   ; 0x0000\n" +
				"mov cl, 12   ; 0x0002\n" +
				"mov dx, [bp] ; 0x0004\n",
		},
		{
			name: "bytes",
			opts: Options{Bytes: true},
			expected: "bits 16\n\n" +
				"mov cx, bx   ; 89 d9\n" +
				"mov cl, 12   ; b1 0c\n" +
				"mov dx, [bp] ; 8b 56 00\n",
		},
		{
			name: "offsets and bytes",
			opts: Options{Offsets: true, Bytes: true},
			expected: "bits 16\n\n" +
				"mov cx, bx   ; 0x0000: 89 d9\n" +
				"mov cl, 12   ; 0x0002: b1 0c\n" +
				"mov dx, [bp] ; 0x0004: 8b 56 00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(t, p, tt.opts))
		})
	}
}

func TestWriteAsm_Colored(t *testing.T) {
	p := disassemble(t, 0x89, 0xD9)

	colored := render(t, p, Options{Style: StyleColored})
	assert.Contains(t, colored, "\x1b[")
	assert.True(t, strings.HasPrefix(colored, "bits 16\n\n"))

	plain := render(t, p, Options{Style: StylePlain})
	assert.NotContains(t, plain, "\x1b[")
}

func TestWrite_Dump(t *testing.T) {
	out := render(t, disassemble(t, 0x89, 0xD9), Options{Format: FormatDump, Source: "listing.bin"})
	assert.Contains(t, out, "=== Program ===")
	assert.Contains(t, out, "Source:       listing.bin")
}

func TestWrite_InvalidFormat(t *testing.T) {
	var out strings.Builder
	err := Write(&out, mc.NewProgram(), Options{Format: Format(42)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.Empty(t, out.String())
}
