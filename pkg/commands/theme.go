package commands

import (
	"context"

	"github.com/spf13/cobra"

	runner "github.com/chouchoussy/FamilyNote/pkg/runner/theme"
	"github.com/chouchoussy/FamilyNote/pkg/store"
	"github.com/chouchoussy/FamilyNote/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the dark/light preference",
		Example: `
familynote theme
familynote theme toggle
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPreference()
			if err != nil {
				return err
			}
			r := runner.Show{Preference: p}
			return r.Do(context.Background())
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPreference()
			if err != nil {
				return err
			}
			r := runner.Toggle{Preference: p}
			return r.Do(context.Background())
		},
	}
	cmd.AddCommand(toggle)

	topLevel.AddCommand(cmd)
}

func openPreference() (*theme.Preference, error) {
	d, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return theme.New(d.Slot(store.ThemeKey)), nil
}
