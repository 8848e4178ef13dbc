package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/browse"
	"github.com/prodipto2001/journal-stitch/pkg/journal"
	"github.com/prodipto2001/journal-stitch/pkg/printers"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

// Get lists memories, filtered by free text and an optional day.
type Get struct {
	ShowID   bool
	Query    string
	On       *time.Time
	Calendar bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	j := journal.Load(n.Persistence)
	all := j.All()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Calendar {
		month := time.Now()
		if n.On != nil {
			month = *n.On
		}
		pp.Calendar(month, browse.CalendarIndex(all), n.On)
	}

	filtered := browse.Filter(all, n.Query, n.On)
	pp.TitleWithCount("Memories", len(filtered))
	pp.Entries(filtered...)

	return nil
}
