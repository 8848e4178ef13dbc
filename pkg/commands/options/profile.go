package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions
type ProfileOptions struct {
	Name   string
	Gender string
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Display name for the profile.")
	cmd.Flags().StringVar(&o.Gender, "gender", "",
		"One of male, female, other.")
}
