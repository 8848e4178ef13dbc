package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/commands/options"
	"github.com/prodipto2001/journal-stitch/pkg/runner/profile"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

func addProfile(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the journal profile.",
		Example: `
stitch profile
stitch profile --name Ada --gender female
stitch profile --interactive
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := profile.Profile{
				Name:        po.Name,
				Gender:      po.Gender,
				Interactive: i.Interactive,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, po)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
