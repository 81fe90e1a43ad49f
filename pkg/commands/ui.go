package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chouchoussy/FamilyNote/pkg/runner/teaui"
	"github.com/chouchoussy/FamilyNote/pkg/store"
	"github.com/chouchoussy/FamilyNote/pkg/theme"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
familynote ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, d, err := openStore()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			events, err := d.Watch(ctx)
			if err != nil {
				return err
			}
			pref := theme.New(d.Slot(store.ThemeKey))
			return teaui.Run(s, pref, events)
		},
	}

	topLevel.AddCommand(cmd)
}
