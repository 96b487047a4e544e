package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudnotes/notectl/compress"
	"github.com/cloudnotes/notectl/format"
)

// Encode renders records and runs the result through the chosen archive
// codec. format.CompressionNone passes the rendered bytes through
// untouched.
func Encode(records []Record, exportType format.ExportType, compression format.CompressionType) ([]byte, error) {
	data, err := Render(records, exportType)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress export: %w", err)
	}

	return out, nil
}

// Write encodes records and streams the result to w.
func Write(w io.Writer, records []Record, exportType format.ExportType, compression format.CompressionType) error {
	data, err := Encode(records, exportType, compression)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}

// WriteFile encodes records and writes them to path, creating missing
// parent directories. The file is written with 0644 permissions; an
// existing file is replaced.
func WriteFile(path string, records []Record, exportType format.ExportType, compression format.CompressionType) error {
	data, err := Encode(records, exportType, compression)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// Filename builds the conventional export file name:
//
//	notes.json
//	notes_last_7_days.md
//	notes_last_36_hours.csv.zst
//
// Parameters:
//   - exportType: determines the base extension
//   - compression: appends its extension when not CompressionNone
//   - window: the covered time window; zero means a full export. Windows
//     on whole days are named in days, anything else in hours.
func Filename(exportType format.ExportType, compression format.CompressionType, window time.Duration) string {
	name := "notes"
	if window > 0 {
		if window%(24*time.Hour) == 0 {
			name += fmt.Sprintf("_last_%d_days", window/(24*time.Hour))
		} else {
			name += fmt.Sprintf("_last_%d_hours", window/time.Hour)
		}
	}

	name += exportType.Extension()
	if compression != format.CompressionNone {
		name += compression.Extension()
	}

	return name
}
