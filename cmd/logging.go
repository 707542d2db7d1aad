package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/viper"
)

// Returns the configured stderr log level. --verbose always selects debug
func logLevel() string {
	if verbose {
		return slog.LevelDebug.String()
	}

	return viper.GetString("log.level")
}

// Creates a logger writing human readable records to stderr and, if logFile is not empty,
// JSON records of every level to logFile. The returned function closes the log file.
func newLogger(stderr io.Writer, level string, logFile string) (*slog.Logger, func() error, error) {
	var stderrLevel slog.Level
	if err := stderrLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: stderrLevel}),
	}
	closer := func() error { return nil }

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = file.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
