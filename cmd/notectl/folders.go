package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
)

func newFoldersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List folders and their note counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCommon(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg)

			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			folders, err := s.ListFolders(cmd.Context())
			if err != nil {
				return err
			}

			if len(folders) == 0 {
				fmt.Println("No folders found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FOLDER\tNOTES")
			for _, folder := range folders {
				fmt.Fprintf(w, "%s\t%d\n", folder.Title, folder.NoteCount)
			}

			return w.Flush()
		},
	}
}
