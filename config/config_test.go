package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cloudnotes/notectl/errs"
	"github.com/cloudnotes/notectl/format"
)

func newListCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "list"}
	RegisterCommonFlags(cmd)
	RegisterListFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func newExportCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "export"}
	RegisterCommonFlags(cmd)
	RegisterExportFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadCommon_Defaults(t *testing.T) {
	cfg, err := LoadCommon(newListCmd(t))
	require.NoError(t, err)

	require.Equal(t, "", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.Workers)
}

func TestLoadCommon_LogLevelNormalized(t *testing.T) {
	cfg, err := LoadCommon(newListCmd(t, "--log-level", "WARNING"))
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadCommon_InvalidLogLevel(t *testing.T) {
	_, err := LoadCommon(newListCmd(t, "--log-level", "chatty"))
	require.ErrorContains(t, err, "--log-level")
}

func TestLoadCommon_NegativeWorkers(t *testing.T) {
	_, err := LoadCommon(newListCmd(t, "--workers", "-1"))
	require.ErrorContains(t, err, "--workers")
}

func TestLoadList(t *testing.T) {
	cfg, err := LoadList(newListCmd(t, "--limit", "25", "--db", "/tmp/NoteStore.sqlite"))
	require.NoError(t, err)

	require.Equal(t, 25, cfg.Limit)
	require.Equal(t, "/tmp/NoteStore.sqlite", cfg.DBPath)
}

func TestLoadList_DefaultLimit(t *testing.T) {
	cfg, err := LoadList(newListCmd(t))
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Limit)
}

func TestLoadList_NegativeLimit(t *testing.T) {
	_, err := LoadList(newListCmd(t, "--limit", "-5"))
	require.ErrorContains(t, err, "--limit")
}

func TestLoadExport_Defaults(t *testing.T) {
	cfg, err := LoadExport(newExportCmd(t))
	require.NoError(t, err)

	require.Equal(t, format.ExportJSON, cfg.ExportFormat)
	require.Equal(t, format.CompressionNone, cfg.Compression)
	require.Equal(t, "", cfg.Output)
	require.Equal(t, "", cfg.OutputDir)
	require.Equal(t, time.Duration(0), cfg.Window())
}

func TestLoadExport_OutputDir(t *testing.T) {
	cfg, err := LoadExport(newExportCmd(t, "--output-dir", "backups"))
	require.NoError(t, err)
	require.Equal(t, "backups", cfg.OutputDir)
}

func TestLoadExport_OutputAndDirExclusive(t *testing.T) {
	_, err := LoadExport(newExportCmd(t, "--output", "notes.json", "--output-dir", "backups"))
	require.ErrorContains(t, err, "mutually exclusive")
}

func TestLoadExport_FullFlags(t *testing.T) {
	cfg, err := LoadExport(newExportCmd(t,
		"--format", "markdown",
		"--compress", "zstd",
		"--output", "out.md.zst",
		"--days", "7",
	))
	require.NoError(t, err)

	require.Equal(t, format.ExportMarkdown, cfg.ExportFormat)
	require.Equal(t, format.CompressionZstd, cfg.Compression)
	require.Equal(t, "out.md.zst", cfg.Output)
	require.Equal(t, 7*24*time.Hour, cfg.Window())
}

func TestLoadExport_HoursWindow(t *testing.T) {
	cfg, err := LoadExport(newExportCmd(t, "--hours", "36"))
	require.NoError(t, err)
	require.Equal(t, 36*time.Hour, cfg.Window())
}

func TestLoadExport_DaysHoursExclusive(t *testing.T) {
	_, err := LoadExport(newExportCmd(t, "--days", "1", "--hours", "6"))
	require.ErrorContains(t, err, "mutually exclusive")
}

func TestLoadExport_NegativeWindow(t *testing.T) {
	_, err := LoadExport(newExportCmd(t, "--days", "-1"))
	require.ErrorContains(t, err, "--days")

	_, err = LoadExport(newExportCmd(t, "--hours", "-1"))
	require.ErrorContains(t, err, "--hours")
}

func TestLoadExport_UnknownFormat(t *testing.T) {
	_, err := LoadExport(newExportCmd(t, "--format", "xml"))
	require.ErrorIs(t, err, errs.ErrUnknownFormat)
}

func TestLoadExport_UnknownCompression(t *testing.T) {
	_, err := LoadExport(newExportCmd(t, "--compress", "brotli"))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestConfig_SlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	require.Equal(t, slog.LevelInfo, Config{LogLevel: "info"}.SlogLevel())
	require.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	require.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	require.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
}
