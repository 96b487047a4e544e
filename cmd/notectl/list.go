package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently modified first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadList(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg)

			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			notes, err := s.ListNotes(cmd.Context(), cfg.Limit)
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMODIFIED\tFOLDER\tTITLE")
			for _, note := range notes {
				title := note.Title
				if note.Pinned {
					title += " *"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					note.ID, fmtDisplayTime(note.Modified), note.Folder, title)
			}

			return w.Flush()
		},
	}

	config.RegisterListFlags(cmd)

	return cmd
}
