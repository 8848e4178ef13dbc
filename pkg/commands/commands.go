package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/prodipto2001/journal-stitch/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "stitch",
		Short: base.Wrap80("A scrapbook journal on the command line and the web."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addServe(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addScan(topLevel)
	addProfile(topLevel)
	addStickers(topLevel)
	addVersion(topLevel)
}
