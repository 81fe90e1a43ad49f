package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/commands/options"
	"github.com/chouchoussy/FamilyNote/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	addExport(topLevel)
	addImport(topLevel)
}

func addExport(topLevel *cobra.Command) {
	dir := "."
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of all tabs, folders, and notes",
		Example: `
familynote export
familynote export --dir ~/backups
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := backup.Export{Dir: dir, Store: s}
			return r.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the backup file into.")
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace ALL data with the contents of a backup file",
		Example: `
familynote import family_notes_backup_2026-09-01.json --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := backup.Import{Path: args[0], Confirmed: co.Yes, Store: s}
			return r.Do(context.Background())
		},
	}
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
