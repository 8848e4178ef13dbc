package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/commands/options"
	"github.com/prodipto2001/journal-stitch/pkg/runner/get"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "get [query]",
		Short: "List memories, filtered by text and date.",
		Example: `
stitch get
stitch get gym
stitch get --on 2024-01-05
stitch get --calendar
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Query:       strings.Join(args, " "),
				On:          on,
				Calendar:    oo.Calendar,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, oo)
	options.AddCalendarArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
