package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/dis8086/cmd/disasm"
	"github.com/Manu343726/dis8086/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var verbose bool

// Closes the log file opened by the logger, if any
var closeLog = func() error { return nil }

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dis8086",
	Short: "A disassembler for 8086 machine code",
	Long: `dis8086 decodes flat 8086 machine code binaries into NASM assembly.

The generated listing starts with a "bits 16" directive and reassembles to the same bytes.
Only the mov instruction family is supported.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := newLogger(cmd.ErrOrStderr(), logLevel(), viper.GetString("log.file"))
		if err != nil {
			return err
		}

		closeLog = closer
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, disasm.DisasmCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dis8086.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decoding details (same as --log-level debug)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Minimum level of the messages logged to stderr (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")

	cobra.CheckErr(viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".dis8086" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dis8086")
	}

	// DIS8086_COLOR, DIS8086_LOG_LEVEL, ...
	viper.SetEnvPrefix("dis8086")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		cobra.CheckErr(fmt.Errorf("reading config file: %w", err))
	}
}
