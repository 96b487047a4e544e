package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
	"github.com/cloudnotes/notectl/export"
	"github.com/cloudnotes/notectl/notedata"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes to JSON, CSV or Markdown, optionally compressed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadExport(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg)

			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			var since time.Time
			window := cfg.Window()
			if window > 0 {
				since = time.Now().Add(-window)
			}

			notes, err := s.AllNotes(cmd.Context(), since)
			if err != nil {
				return err
			}

			jobs := make([]notedata.Job, len(notes))
			for i, note := range notes {
				jobs[i] = notedata.Job{Raw: note.Data, Title: note.Title}
			}

			extractions, err := notedata.DecodeBatch(cmd.Context(), jobs, cfg.Workers)
			if err != nil {
				return err
			}

			var partial, absent int
			records := make([]export.Record, len(notes))
			for i, note := range notes {
				ex := extractions[i]
				switch ex.Status {
				case notedata.StatusPartial:
					partial++
				case notedata.StatusAbsent:
					absent++
				}

				records[i] = export.Record{
					ID:       note.ID,
					Title:    note.Title,
					Folder:   note.Folder,
					Pinned:   note.Pinned,
					Created:  note.Created,
					Modified: note.Modified,
					Status:   ex.Status.String(),
					Content:  ex.Content,
				}
			}
			logger.Info("decoded note bodies",
				"total", len(records), "partial", partial, "absent", absent)

			path := cfg.Output
			if path == "" && cfg.OutputDir != "" {
				path = filepath.Join(cfg.OutputDir, export.Filename(cfg.ExportFormat, cfg.Compression, window))
			}

			if path == "" {
				return export.Write(os.Stdout, records, cfg.ExportFormat, cfg.Compression)
			}

			if err := export.WriteFile(path, records, cfg.ExportFormat, cfg.Compression); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Exported %d notes to %s\n", len(records), path)

			return nil
		},
	}

	config.RegisterExportFlags(cmd)

	return cmd
}
