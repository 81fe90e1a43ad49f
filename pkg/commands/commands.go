package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/chouchoussy/FamilyNote/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "familynote",
		Short: base.Wrap80("Family notes on the command line: tabs, folders, rich-text notes."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTab(topLevel)
	addFolder(topLevel)
	addNote(topLevel)
	addGet(topLevel)
	addBackup(topLevel)
	addTheme(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// openStore builds the disk-backed store every command runs against.
func openStore() (*store.Store, *store.Disk, error) {
	d, err := store.Open(nil)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.New(d)
	if err != nil {
		return nil, nil, err
	}
	return s, d, nil
}
