package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions
type ServeOptions struct {
	Port      string
	StaticDir string
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVarP(&o.Port, "port", "p", "8080",
		"Port to serve the journal on.")
	cmd.Flags().StringVar(&o.StaticDir, "static", "",
		"Directory of front end assets to serve at /.")
}
