// Package listing renders decoded programs as text.
//
// # Formatting - Output Formatting Utilities
//
// This file provides utilities for formatting instructions, including operand
// colorization. Colors are picked from the decoded operand kinds, never by
// re-parsing the instruction text.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/dis8086/pkg/utils"
	"github.com/fatih/color"
)

// FormatStyle controls the output style for formatting functions
type FormatStyle int

const (
	// StylePlain produces plain text output without colors
	StylePlain FormatStyle = iota
	// StyleColored produces colorized output using ANSI escape codes
	StyleColored
)

// ColorMode selects when colored output is used
type ColorMode int

const (
	// ColorAuto colors the output only when it goes to a terminal
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var ErrInvalidColorMode = errors.New("invalid color mode")

var colorModes = map[string]ColorMode{
	"auto":   ColorAuto,
	"always": ColorAlways,
	"never":  ColorNever,
}

func (m ColorMode) String() string {
	for name, mode := range colorModes {
		if mode == m {
			return name
		}
	}

	return "unknown"
}

// Returns the color mode with the given name (auto, always, never)
func ParseColorMode(name string) (ColorMode, error) {
	if mode, ok := colorModes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return mode, nil
	}

	return ColorAuto, utils.MakeError(ErrInvalidColorMode, "'%v' (expected one of %v)", name, strings.Join(utils.SortedKeys(colorModes), ", "))
}

// Returns the format style for this mode, given whether the output is a terminal
func (m ColorMode) Style(isTerminal bool) FormatStyle {
	switch m {
	case ColorAlways:
		return StyleColored
	case ColorAuto:
		if isTerminal {
			return StyleColored
		}
	}

	return StylePlain
}

// Colors used for each part of an instruction
type Palette struct {
	Mnemonic  *color.Color
	Register  *color.Color
	Memory    *color.Color
	Immediate *color.Color
	Size      *color.Color
	Comment   *color.Color
}

// Returns the default instruction palette
func DefaultPalette() Palette {
	return Palette{
		Mnemonic:  color.New(color.FgYellow, color.Bold),
		Register:  color.New(color.FgGreen),
		Memory:    color.New(color.FgCyan),
		Immediate: color.New(color.FgMagenta),
		Size:      color.New(color.FgHiBlue),
		Comment:   color.New(color.FgHiBlack),
	}
}

func (p Palette) colors() []*color.Color {
	return []*color.Color{p.Mnemonic, p.Register, p.Memory, p.Immediate, p.Size, p.Comment}
}

// InstructionFormatter formats instructions for display
type InstructionFormatter struct {
	style   FormatStyle
	palette Palette
}

// NewInstructionFormatter creates a new instruction formatter
func NewInstructionFormatter(style FormatStyle) *InstructionFormatter {
	return NewInstructionFormatterWithPalette(style, DefaultPalette())
}

// NewInstructionFormatterWithPalette creates a new instruction formatter using the given colors
func NewInstructionFormatterWithPalette(style FormatStyle, palette Palette) *InstructionFormatter {
	for _, c := range palette.colors() {
		// Colors are decided by the style, not by the process-wide color.NoColor detection
		if style == StyleColored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &InstructionFormatter{style: style, palette: palette}
}

// Style returns the formatter output style
func (f *InstructionFormatter) Style() FormatStyle {
	return f.style
}

// FormatOperand formats a single instruction operand
func (f *InstructionFormatter) FormatOperand(operand *instructions.OperandValue) string {
	switch operand.Kind() {
	case instructions.OperandKind_Register:
		return f.palette.Register.Sprint(operand.String())
	case instructions.OperandKind_EffectiveAddress, instructions.OperandKind_DirectAddress:
		return f.palette.Memory.Sprint(operand.String())
	case instructions.OperandKind_Immediate:
		value := operand.Immediate()

		if operand.HasExplicitSize() {
			return f.palette.Size.Sprint(value.Type().SizeKeyword()) + " " + f.palette.Immediate.Sprint(value.String())
		}

		return f.palette.Immediate.Sprint(value.String())
	}

	panic("unreachable")
}

// FormatInstruction formats an instruction as "mnemonic destination, source"
func (f *InstructionFormatter) FormatInstruction(instr *instructions.Instruction) string {
	return fmt.Sprintf("%s %s, %s",
		f.palette.Mnemonic.Sprint(instr.Mnemonic()),
		f.FormatOperand(&instr.Destination),
		f.FormatOperand(&instr.Source),
	)
}

// FormatComment formats an assembly comment, including the leading ';'
func (f *InstructionFormatter) FormatComment(text string) string {
	return f.palette.Comment.Sprint("; " + text)
}
