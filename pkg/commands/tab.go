package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/commands/options"
	"github.com/chouchoussy/FamilyNote/pkg/runner/tab"
)

func addTab(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tab",
		Short: "Manage tabs",
		Example: `
familynote tab add Recipes
familynote tab list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTabAdd(cmd)
	addTabRename(cmd)
	addTabRm(cmd)
	addTabSelect(cmd)
	addTabList(cmd)

	topLevel.AddCommand(cmd)
}

func addTabAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tab and make it current",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := tab.Create{Name: strings.Join(args, " "), Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addTabRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a tab",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := tab.Rename{ID: args[0], Name: strings.Join(args[1:], " "), Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addTabRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a tab and everything inside it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := tab.Delete{ID: args[0], Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addTabSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Make a tab current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := tab.Select{ID: args[0], Store: s}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addTabList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			r := tab.List{ShowID: io.ShowID, Store: s}
			return r.Do(context.Background())
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
