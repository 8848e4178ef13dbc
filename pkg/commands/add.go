package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/commands/options"
	"github.com/prodipto2001/journal-stitch/pkg/runner/add"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.ComposeOptions{}

	cmd := &cobra.Command{
		Use:   "add [message]",
		Short: "Compose a new memory.",
		Example: `
stitch add "went to the gym, did legs"
stitch add --title "Leg day" "squats and lunges" --mood happy
stitch add "lake trip" --image lake.jpg --note "bring sunscreen next time"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       co.Title,
				Message:     strings.Join(args, " "),
				Mood:        co.Mood,
				Notes:       co.Notes,
				Images:      co.Images,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddComposeArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
