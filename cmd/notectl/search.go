package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search note content and titles",
		Args:  cobra.ExactArgs(1),
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

			term := args[0]
			results, err := s.SearchNotes(cmd.Context(), term, cfg.Workers)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Printf("No notes matching %q.\n", term)
				return nil
			}

			fmt.Printf("%d notes matching %q:\n\n", len(results), term)
			for _, r := range results {
				fmt.Printf("[%d] %s (%s)\n", r.ID, r.Title, fmtDisplayTime(r.Modified))
				if r.Snippet != "" {
					fmt.Printf("    %s\n", r.Snippet)
				}
			}

			return nil
		},
	}
}
