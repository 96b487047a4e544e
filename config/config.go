// Package config defines the command-line options shared by the notectl
// commands and validates them into a Config.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/format"
)

// Config captures all command-line options for one notectl invocation.
// Fields beyond the common ones are only meaningful for the command
// whose loader filled them.
type Config struct {
	DBPath   string
	LogLevel string
	Workers  int

	// list
	Limit int

	// export
	ExportFormat format.ExportType
	Compression  format.CompressionType
	Output       string
	OutputDir    string
	Days         int
	Hours        int
}

// Window returns the export time window, zero for a full export.
func (c Config) Window() time.Duration {
	switch {
	case c.Days > 0:
		return time.Duration(c.Days) * 24 * time.Hour
	case c.Hours > 0:
		return time.Duration(c.Hours) * time.Hour
	default:
		return 0
	}
}

// SlogLevel maps the configured log level onto slog's levels.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RegisterCommonFlags attaches the flags every command understands to the
// command's persistent flag set.
func RegisterCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("db", "", "Path to NoteStore.sqlite (defaults to the macOS location)")
	flags.String("log-level", "info", "Logging level: debug, info, warn, error")
	flags.Int("workers", 0, "Concurrent note decoders (0 = number of CPUs)")
}

// RegisterListFlags attaches the list command's flags.
func RegisterListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "l", 20, "Maximum notes to list (0 = all)")
}

// RegisterExportFlags attaches the export command's flags.
func RegisterExportFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("format", "json", "Export format: json, csv, markdown")
	flags.String("compress", "none", "Archive compression: none, gzip, zstd, lz4, s2")
	flags.StringP("output", "o", "", "Output file (default is stdout)")
	flags.StringP("output-dir", "O", "", "Output directory, with a generated file name")
	flags.Int("days", 0, "Only notes modified in the last N days")
	flags.Int("hours", 0, "Only notes modified in the last N hours")
}

// LoadCommon reads and validates the common flags.
func LoadCommon(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()

	dbPath, err := flags.GetString("db")
	if err != nil {
		return Config{}, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return Config{}, err
	}
	workers, err := flags.GetInt("workers")
	if err != nil {
		return Config{}, err
	}

	logLevel = strings.ToLower(logLevel)
	if logLevel == "warning" {
		logLevel = "warn"
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid --log-level: %s", logLevel)
	}

	if workers < 0 {
		return Config{}, fmt.Errorf("--workers must be >= 0")
	}

	return Config{
		DBPath:   dbPath,
		LogLevel: logLevel,
		Workers:  workers,
	}, nil
}

// LoadList reads the list command's configuration.
func LoadList(cmd *cobra.Command) (Config, error) {
	cfg, err := LoadCommon(cmd)
	if err != nil {
		return Config{}, err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return Config{}, err
	}
	if limit < 0 {
		return Config{}, fmt.Errorf("--limit must be >= 0")
	}
	cfg.Limit = limit

	return cfg, nil
}

// LoadExport reads and validates the export command's configuration.
func LoadExport(cmd *cobra.Command) (Config, error) {
	cfg, err := LoadCommon(cmd)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()

	formatName, err := flags.GetString("format")
	if err != nil {
		return Config{}, err
	}
	compressName, err := flags.GetString("compress")
	if err != nil {
		return Config{}, err
	}
	output, err := flags.GetString("output")
	if err != nil {
		return Config{}, err
	}
	outputDir, err := flags.GetString("output-dir")
	if err != nil {
		return Config{}, err
	}
	days, err := flags.GetInt("days")
	if err != nil {
		return Config{}, err
	}
	hours, err := flags.GetInt("hours")
	if err != nil {
		return Config{}, err
	}

	cfg.ExportFormat, err = format.ParseExport(formatName)
	if err != nil {
		return Config{}, fmt.Errorf("invalid --format: %w", err)
	}
	cfg.Compression, err = format.ParseCompression(compressName)
	if err != nil {
		return Config{}, fmt.Errorf("invalid --compress: %w", err)
	}

	if output != "" && outputDir != "" {
		return Config{}, fmt.Errorf("--output and --output-dir are mutually exclusive")
	}
	if days < 0 {
		return Config{}, fmt.Errorf("--days must be >= 0")
	}
	if hours < 0 {
		return Config{}, fmt.Errorf("--hours must be >= 0")
	}
	if days > 0 && hours > 0 {
		return Config{}, fmt.Errorf("--days and --hours are mutually exclusive")
	}

	cfg.Output = output
	cfg.OutputDir = outputDir
	cfg.Days = days
	cfg.Hours = hours

	return cfg, nil
}
