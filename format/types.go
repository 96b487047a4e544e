// Package format defines the shared type constants for notectl: the
// compression algorithms understood by the compress package and the export
// encodings produced by the export package.
package format

import (
	"fmt"
	"strings"

	"github.com/cloudnotes/notectl/errs"
)

type (
	CompressionType uint8
	ExportType      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip (RFC 1952) compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents S2 compression.

	ExportJSON     ExportType = 0x1 // ExportJSON represents indented JSON output.
	ExportCSV      ExportType = 0x2 // ExportCSV represents CSV output with a header row.
	ExportMarkdown ExportType = 0x3 // ExportMarkdown represents Markdown output.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}

// Extension returns the filename suffix appended to compressed export files,
// including the leading dot. CompressionNone yields an empty string.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	case CompressionS2:
		return ".s2"
	default:
		return ""
	}
}

// ParseCompression maps a user-supplied name to its CompressionType.
// Matching is case-insensitive; "none" and the empty string both mean
// CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	case "s2":
		return CompressionS2, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCompression, name)
	}
}

func (e ExportType) String() string {
	switch e {
	case ExportJSON:
		return "JSON"
	case ExportCSV:
		return "CSV"
	case ExportMarkdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Extension returns the filename suffix for the export encoding, including
// the leading dot.
func (e ExportType) Extension() string {
	switch e {
	case ExportJSON:
		return ".json"
	case ExportCSV:
		return ".csv"
	case ExportMarkdown:
		return ".md"
	default:
		return ""
	}
}

// ParseExport maps a user-supplied name to its ExportType. Matching is
// case-insensitive; both "md" and "markdown" select ExportMarkdown.
func ParseExport(name string) (ExportType, error) {
	switch strings.ToLower(name) {
	case "json":
		return ExportJSON, nil
	case "csv":
		return ExportCSV, nil
	case "md", "markdown":
		return ExportMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownFormat, name)
	}
}
