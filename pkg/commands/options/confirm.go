package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions captures explicit consent for destructive operations.
type ConfirmOptions struct {
	Yes bool
}

// AddConfirmArgs wires the confirmation flag on the provided command.
func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
