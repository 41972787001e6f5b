package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func addDiary(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "List diary entries, newest first",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			entries, err := a.client.DiaryEntries(ctx)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error { return printDiary(w, entries) })
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title> [text...]",
		Short: "Write a diary entry; text is read from stdin when omitted",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			text := strings.Join(args[1:], " ")
			if text == "" {
				var err error
				if text, err = readAll(a.in); err != nil {
					return err
				}
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			entry, err := a.client.AddDiaryEntry(ctx, args[0], text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "Added %s\n", entry.ID)
			return err
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a diary entry",
		Args:    cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			return a.client.DeleteDiaryEntry(ctx, id)
		}),
	})

	topLevel.AddCommand(cmd)
}
