package commands

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prodipto2001/journal-stitch/pkg/runner/scan"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

func addScan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "scan [image file]",
		Short: "Turn a photographed page into a memory via OCR.",
		Example: `
stitch scan page.jpg
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := scan.Scan{
				File:        args[0],
				APIKey:      os.Getenv("GEMINI_API_KEY"),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
