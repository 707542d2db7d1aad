package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc"
	"github.com/Manu343726/dis8086/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() string{
	"i8086.mov": func() string { return mc.Descriptor.DocString() },
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show dis8086 documentation",
	Long: `Dumps the documentation of the specified dis8086 module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		module := args[0]
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("creating documentation file: %w", err)
			}
			defer file.Close()
			_, err = fmt.Fprintln(file, supportedModules[module]())
			return err
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), supportedModules[module]())
		return err
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
