package serve

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/journal"
	"github.com/prodipto2001/journal-stitch/pkg/ocr"
	"github.com/prodipto2001/journal-stitch/pkg/scan"
	"github.com/prodipto2001/journal-stitch/pkg/server"
	"github.com/prodipto2001/journal-stitch/pkg/store"
	"github.com/prodipto2001/journal-stitch/pkg/weather"
)

// Serve hosts the journal web app and its API.
type Serve struct {
	Port      string
	StaticDir string
	APIKey    string

	Persistence store.Persistence
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not serve, no persistence")
	}

	j := journal.Load(n.Persistence)
	extractor := ocr.New(n.APIKey)
	pipeline := scan.New(extractor, j, nil)
	h := server.NewHandlers(j, pipeline, extractor, weather.New(), n.Persistence)

	srv := server.New(n.Port, n.StaticDir, h)

	// Reload when another process rewrites the entries file.
	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		log.Printf("serve: watch disabled: %v", err)
	} else {
		go func() {
			for ev := range events {
				if ev.Type == store.EventEntriesChanged {
					j.Replace(n.Persistence.LoadEntries())
				}
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
