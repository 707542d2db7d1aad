package utils

import (
	"errors"
	"fmt"
	"strings"
)

type AsciiFrameField struct {
	// Name of the field
	Name string

	// Field width in bits
	Width int
}

// A group of contiguous fields filling exactly one byte of the frame
type asciiFrameByte struct {
	label  string
	fields []AsciiFrameField
	widths []int
}

// Number of characters between the opening and closing borders of the byte
func (b *asciiFrameByte) span() int {
	return Accumulate(b.widths, func(w int) int { return w }) + len(b.widths) - 1
}

type asciiFrame struct {
	bytes   []asciiFrameByte
	leftpad string
}

var ErrInvalidFrame = errors.New("invalid ascii frame")

func center(text string, length int) string {
	if len(text) >= length {
		return text
	}

	left := (length - len(text)) / 2
	right := length - len(text) - left

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func newAsciiFrame(fields []AsciiFrameField, leftpad int) (*asciiFrame, error) {
	frame := &asciiFrame{leftpad: strings.Repeat(" ", leftpad)}
	current := asciiFrameByte{}
	used := 0

	for _, field := range fields {
		if field.Width <= 0 {
			return nil, MakeError(ErrInvalidFrame, "field '%v' has invalid width %v", field.Name, field.Width)
		}

		if used+field.Width > BitsPerByte {
			return nil, MakeError(ErrInvalidFrame, "field '%v' crosses a byte boundary", field.Name)
		}

		current.fields = append(current.fields, field)
		current.widths = append(current.widths, max(len(field.Name)+2, 3))
		used += field.Width

		if used == BitsPerByte {
			current.label = fmt.Sprintf("byte %v", len(frame.bytes)+1)

			if extra := len(current.label) - current.span(); extra > 0 {
				current.widths[len(current.widths)-1] += extra
			}

			frame.bytes = append(frame.bytes, current)
			current = asciiFrameByte{}
			used = 0
		}
	}

	if used != 0 {
		return nil, MakeError(ErrInvalidFrame, "fields do not fill the last byte (%v bits left)", BitsPerByte-used)
	}

	return frame, nil
}

func (f *asciiFrame) Draw() string {
	const (
		body_splitter   string = "|"
		border_splitter string = "+"
		border_body     string = "-"
	)

	var labels_row strings.Builder
	var border_row strings.Builder
	var body_row strings.Builder

	labels_row.WriteString(f.leftpad)
	border_row.WriteString(f.leftpad)
	body_row.WriteString(f.leftpad)

	for _, b := range f.bytes {
		labels_row.WriteString(" ")
		labels_row.WriteString(center(b.label, b.span()))

		for i, field := range b.fields {
			border_row.WriteString(border_splitter)
			border_row.WriteString(strings.Repeat(border_body, b.widths[i]))
			body_row.WriteString(body_splitter)
			body_row.WriteString(center(field.Name, b.widths[i]))
		}
	}

	border_row.WriteString(border_splitter)
	body_row.WriteString(body_splitter)

	var result strings.Builder

	result.WriteString(strings.TrimRight(labels_row.String(), " "))
	result.WriteString("\n")
	result.WriteString(border_row.String())
	result.WriteString("\n")
	result.WriteString(body_row.String())
	result.WriteString("\n")
	result.WriteString(border_row.String())
	result.WriteString("\n")

	return result.String()
}

// Prints an ascii diagram of a byte oriented binary frame composed of contiguous bit fields.
// Fields are laid out most significant bit first within each byte, and cannot cross byte boundaries.
func AsciiFrame(fields []AsciiFrameField, leftpad int) (string, error) {
	frame, err := newAsciiFrame(fields, leftpad)
	if err != nil {
		return "", err
	}

	return frame.Draw(), nil
}
