package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/cloudnotes/notectl/config"
	"github.com/cloudnotes/notectl/notedata"
)

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Print one note's full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}

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

			note, err := s.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			extraction := notedata.Decode(note.Data, note.Title)
			switch extraction.Status {
			case notedata.StatusPartial:
				logger.Warn("note body decoded partially", "id", id)
			case notedata.StatusAbsent:
				logger.Debug("note has no decodable body, using title", "id", id)
			}

			fmt.Println(note.Title)
			fmt.Println(strings.Repeat("=", utf8.RuneCountInString(note.Title)))
			if note.Folder != "" {
				fmt.Printf("Folder: %s\n", note.Folder)
			}
			fmt.Printf("Created: %s    Modified: %s\n\n",
				fmtDisplayTime(note.Created), fmtDisplayTime(note.Modified))
			fmt.Println(extraction.Content)

			return nil
		},
	}
}
