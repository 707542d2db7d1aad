package disasm

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/dis8086/pkg/hw/cpu"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/listing"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/loader"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var outputFile string

var DisasmCmd = &cobra.Command{
	Use:   "disasm <file>",
	Short: "Disassemble an 8086 machine code binary",
	Long: `Decodes a flat 8086 machine code binary and prints it as NASM assembly.

The file has no header: decoding starts at its first byte and goes on until the last one.
Use "-" to read the machine code from standard input.

Nothing is written if any instruction fails to decode. The error reports the offset of the
instruction that could not be decoded.

Example:
  dis8086 disasm listing_0037_single_register_mov
  dis8086 disasm --offsets --bytes -o listing.asm listing_0039_more_movs`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		s.Output = outputFile
		return disassemble(args[0], s, cmd.InOrStdin(), cmd.OutOrStdout(), slog.Default())
	},
}

func init() {
	DisasmCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file. If not specified, the listing is written to stdout.")
	DisasmCmd.Flags().StringP("format", "f", "asm", "Output format (asm, yaml, dump)")
	DisasmCmd.Flags().String("color", "auto", "Colorize assembly output (auto, always, never)")
	DisasmCmd.Flags().Bool("offsets", false, "Annotate each instruction with its offset")
	DisasmCmd.Flags().Bool("bytes", false, "Annotate each instruction with its encoding")

	for _, key := range []string{"format", "color", "offsets", "bytes"} {
		cobra.CheckErr(viper.BindPFlag(key, DisasmCmd.Flags().Lookup(key)))
	}
}

// Disassembly settings, from flags, environment and config file
type settings struct {
	Format  listing.Format
	Color   listing.ColorMode
	Offsets bool
	Bytes   bool
	Output  string
}

func loadSettings(v *viper.Viper) (*settings, error) {
	format, err := listing.ParseFormat(v.GetString("format"))
	if err != nil {
		return nil, err
	}

	colorMode, err := listing.ParseColorMode(v.GetString("color"))
	if err != nil {
		return nil, err
	}

	return &settings{
		Format:  format,
		Color:   colorMode,
		Offsets: v.GetBool("offsets"),
		Bytes:   v.GetBool("bytes"),
	}, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func disassemble(path string, s *settings, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	logger.Debug("loading machine code", "path", path)

	loaded, err := loader.LoadFile(path, &loader.Options{Stdin: stdin})
	if err != nil {
		return err
	}

	logger.Info("disassembling", "path", loaded.Path, "format", loaded.Format, "bytes", len(loaded.Code))

	program, err := mc.NewDisassembler(logger).Disassemble(cpu.MakeCode(loaded.Code))
	if err != nil {
		return fmt.Errorf("%s: %w", loaded.Path, err)
	}

	style := listing.StylePlain
	if s.Output == "" {
		style = s.Color.Style(isTerminal(stdout))
	} else if s.Color == listing.ColorAlways {
		style = listing.StyleColored
	}

	// Rendered in memory first so nothing is written on failure
	var buffer bytes.Buffer
	err = listing.Write(&buffer, program, listing.Options{
		Format:  s.Format,
		Style:   style,
		Offsets: s.Offsets,
		Bytes:   s.Bytes,
		Source:  loaded.Path,
	})
	if err != nil {
		return err
	}

	if s.Output != "" {
		if err := os.WriteFile(s.Output, buffer.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}

		logger.Info("listing written", "output", s.Output, "instructions", program.Len())
		return nil
	}

	_, err = stdout.Write(buffer.Bytes())
	return err
}
