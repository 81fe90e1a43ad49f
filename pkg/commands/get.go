package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/commands/options"
	"github.com/chouchoussy/FamilyNote/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	search := ""

	cmd := &cobra.Command{
		Use:   "get [search terms]",
		Short: "List notes of the current tab and folder, newest first",
		Example: `
familynote get
familynote get shopping
familynote get --id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			term := search
			if term == "" {
				term = strings.Join(args, " ")
			}
			r := get.Get{ShowID: io.ShowID, Search: term, Store: s}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "",
		"Filter by title or content text.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
