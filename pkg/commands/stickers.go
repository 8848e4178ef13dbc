package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/runner/stickers"
)

func addStickers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stickers",
		Short: "List the stickers memories can carry.",
		Example: `
stitch stickers
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stickers.Stickers{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
