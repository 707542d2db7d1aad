// Package loader provides high-level APIs for loading 8086 machine code.
//
// Input files are flat binaries with no header: the whole file is the instruction stream,
// starting at offset 0. The package handles:
//
//   - Reading the whole file (or standard input, with the "-" path) into memory
//   - Rejecting assembly sources passed by mistake
//   - Reporting unreadable sources with [ErrSourceUnavailable]
//
// Typical usage:
//
//	result, err := loader.LoadFile("listing_0037_single_register_mov", nil)
//	if err != nil { ... }
//	program, err := mc.Disassemble(result.Code)
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Path that selects standard input as the source
const StdinPath = "-"

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Options configures the loading process
type Options struct {
	// Stdin is read when the path is "-". If nil, os.Stdin is used
	Stdin io.Reader
}

// Result contains the result of a load operation
type Result struct {
	// Code is the whole instruction stream
	Code []byte

	// Path is the path the code was loaded from
	Path string

	// Format is the detected file format
	Format FileFormat
}

// FileFormat represents the type of program file
type FileFormat int

const (
	// FormatUnknown indicates an unknown file format
	FormatUnknown FileFormat = iota
	// FormatBinary indicates a flat machine code binary
	FormatBinary
	// FormatAssembly indicates an assembly source (.asm, .s)
	FormatAssembly
)

// String returns the string representation of a FileFormat
func (f FileFormat) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatAssembly:
		return "assembly"
	default:
		return "unknown"
	}
}

// DetectFormat detects the file format from the path extension. Anything that is not an
// assembly source is treated as a flat binary
func DetectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asm", ".s", ".nasm":
		return FormatAssembly
	default:
		return FormatBinary
	}
}

// IsSupportedFile returns true if the file can be disassembled
func IsSupportedFile(path string) bool {
	return DetectFormat(path) == FormatBinary
}

// LoadFile loads the whole machine code file at the given path into memory.
func LoadFile(path string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	if path == StdinPath {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}

		code, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: reading standard input: %w", ErrSourceUnavailable, err)
		}

		return &Result{
			Code:   code,
			Path:   path,
			Format: FormatBinary,
		}, nil
	}

	format := DetectFormat(path)
	if format != FormatBinary {
		return nil, fmt.Errorf("%w: '%s' looks like an %v source, assemble it first", ErrUnsupportedFormat, path, format)
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return &Result{
		Code:   code,
		Path:   path,
		Format: format,
	}, nil
}
