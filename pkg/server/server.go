// Package server exposes the journal over a small JSON HTTP API consumed by
// the browser front end.
package server

import (
	"log"
	"net/http"
)

// New builds the HTTP server for the given handlers. When staticDir is
// non-empty the front end is served from it at the root.
func New(port string, staticDir string, h *Handlers) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ocr", h.HandleOCR)
	mux.HandleFunc("/api/scan", h.HandleScan)
	mux.HandleFunc("/api/entries", h.HandleEntries)
	mux.HandleFunc("/api/entries/", h.HandleEntry)
	mux.HandleFunc("/api/calendar", h.HandleCalendar)
	mux.HandleFunc("/api/weather", h.HandleWeather)
	mux.HandleFunc("/api/profile", h.HandleProfile)
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	log.Printf("journal listening on http://localhost:%s", port)
	return srv
}
