package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
	"github.com/cloudnotes/notectl/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notectl",
		Short: "Read, search and export Apple Notes from the command line",
		Long: `notectl reads the Apple Notes database directly (read-only) and decodes
the compressed note bodies into plain text for listing, searching,
reading and exporting.`,
		SilenceUsage: true,
	}

	config.RegisterCommonFlags(rootCmd)

	rootCmd.AddCommand(
		newListCmd(),
		newSearchCmd(),
		newReadCmd(),
		newFoldersCmd(),
		newExportCmd(),
	)

	return rootCmd
}

// setupLogger builds the process logger from the configured level and
// installs it as the slog default.
func setupLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	return logger
}

// openStore opens the configured note store.
func openStore(cfg config.Config, logger *slog.Logger) (*store.Store, error) {
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened note store", "path", s.Path())

	return s, nil
}

// displayTime is the timestamp layout used in terminal output.
const displayTime = "2006-01-02 15:04"

func fmtDisplayTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(displayTime)
}
