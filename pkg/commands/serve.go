package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/commands/options"
	"github.com/prodipto2001/journal-stitch/pkg/runner/serve"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the journal web app and API.",
		Example: `
stitch serve
stitch serve --port 3000 --static ./web
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional, real env always wins.
			_ = godotenv.Load()

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := serve.Serve{
				Port:        so.Port,
				StaticDir:   so.StaticDir,
				APIKey:      os.Getenv("GEMINI_API_KEY"),
				Persistence: p,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddServeArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
