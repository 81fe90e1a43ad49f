package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/runner/notes"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes in the current folder",
		Example: `
familynote note add "Shopping list" --content "<p>milk, eggs</p>"
familynote note rm l9h2k4x8p0q1m3z7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteEdit(cmd)
	addNoteRm(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteAdd(topLevel *cobra.Command) {
	content := ""
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a note in the current tab and folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := notes.Add{
				Title:   strings.Join(args, " "),
				Content: content,
				Store:   s,
			}
			return r.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Note content (opaque markup, stored verbatim).")
	topLevel.AddCommand(cmd)
}

func addNoteEdit(topLevel *cobra.Command) {
	content := ""
	cmd := &cobra.Command{
		Use:   "edit <id> [title]",
		Short: "Replace a note's title and content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := notes.Edit{
				ID:      args[0],
				Title:   strings.Join(args[1:], " "),
				Content: content,
				Store:   s,
			}
			return r.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Replacement content (opaque markup, stored verbatim).")
	topLevel.AddCommand(cmd)
}

func addNoteRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := notes.Remove{ID: args[0], Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}
