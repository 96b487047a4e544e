package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudnotes/notectl/errs"
	"github.com/cloudnotes/notectl/format"
	"github.com/cloudnotes/notectl/internal/hash"
	"github.com/cloudnotes/notectl/internal/pool"
)

// Render serializes records into the requested export format.
//
// Output is deterministic for a given record list: no export timestamps
// or environment-dependent fields are embedded, so re-exporting unchanged
// notes produces byte-identical documents.
//
// Returns:
//   - []byte: the rendered document, owned by the caller
//   - error: errs.ErrUnknownFormat for unmapped export types
func Render(records []Record, exportType format.ExportType) ([]byte, error) {
	switch exportType {
	case format.ExportJSON:
		return renderJSON(records)
	case format.ExportCSV:
		return renderCSV(records)
	case format.ExportMarkdown:
		return renderMarkdown(records)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownFormat, exportType)
	}
}

type jsonNote struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Folder      string `json:"folder,omitempty"`
	Pinned      bool   `json:"pinned,omitempty"`
	Created     string `json:"created,omitempty"`
	Modified    string `json:"modified,omitempty"`
	Status      string `json:"status,omitempty"`
	Fingerprint string `json:"fingerprint"`
	Content     string `json:"content"`
}

func renderJSON(records []Record) ([]byte, error) {
	notes := make([]jsonNote, len(records))
	for i, rec := range records {
		notes[i] = jsonNote{
			ID:          rec.ID,
			Title:       rec.Title,
			Folder:      rec.Folder,
			Pinned:      rec.Pinned,
			Created:     fmtTime(rec.Created),
			Modified:    fmtTime(rec.Modified),
			Status:      rec.Status,
			Fingerprint: hash.Fingerprint([]byte(rec.Content)),
			Content:     rec.Content,
		}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render JSON export: %w", err)
	}

	return append(data, '\n'), nil
}

var csvHeader = []string{"ID", "Title", "Folder", "Pinned", "Created", "Modified", "Content"}

func renderCSV(records []Record) ([]byte, error) {
	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to render CSV export: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Title,
			rec.Folder,
			strconv.FormatBool(rec.Pinned),
			fmtTime(rec.Created),
			fmtTime(rec.Modified),
			rec.Content,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to render CSV export: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render CSV export: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func renderMarkdown(records []Record) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Apple Notes Export\n\n")
	fmt.Fprintf(&buf, "%d notes\n", len(records))

	for _, rec := range records {
		buf.WriteString("\n---\n\n")
		fmt.Fprintf(&buf, "## %s\n\n", rec.Title)

		meta := make([]string, 0, 3)
		if rec.Folder != "" {
			meta = append(meta, "**Folder:** "+rec.Folder)
		}
		if !rec.Modified.IsZero() {
			meta = append(meta, "**Modified:** "+fmtTime(rec.Modified))
		}
		if rec.Pinned {
			meta = append(meta, "**Pinned**")
		}
		if len(meta) > 0 {
			buf.WriteString(strings.Join(meta, " | ") + "\n\n")
		}

		buf.WriteString(rec.Content)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
