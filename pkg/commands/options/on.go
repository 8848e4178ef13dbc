package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
	Calendar bool
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-02-28" or --on="2/28".`)
}

func AddCalendarArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Show a month calendar of memory counts.")
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return &t, nil
}
