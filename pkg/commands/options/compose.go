package options

import (
	"github.com/spf13/cobra"
)

// ComposeOptions
type ComposeOptions struct {
	Title  string
	Mood   string
	Notes  []string
	Images []string
}

func AddComposeArgs(cmd *cobra.Command, o *ComposeOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the memory.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Mood sticker key, see the stickers command.")
	cmd.Flags().StringArrayVarP(&o.Notes, "note", "n", nil,
		"Add a sticky note, repeatable.")
	cmd.Flags().StringArrayVar(&o.Images, "image", nil,
		"Attach a local image file, repeatable.")
}
