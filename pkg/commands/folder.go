package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/commands/options"
	"github.com/chouchoussy/FamilyNote/pkg/runner/folder"
)

func addFolder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders of the current tab",
		Example: `
familynote folder add Dinners
familynote folder list --id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addFolderAdd(cmd)
	addFolderRename(cmd)
	addFolderRm(cmd)
	addFolderSelect(cmd)
	addFolderList(cmd)

	topLevel.AddCommand(cmd)
}

func addFolderAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder in the current tab and make it current",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := folder.Create{Name: strings.Join(args, " "), Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addFolderRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := folder.Rename{ID: args[0], Name: strings.Join(args[1:], " "), Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addFolderRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a folder and its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := folder.Delete{ID: args[0], Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addFolderSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Make a folder of the current tab current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := folder.Select{ID: args[0], Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addFolderList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current tab's folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := folder.List{ShowID: io.ShowID, Store: s}
			return r.Do(context.Background())
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
