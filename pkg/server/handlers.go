package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/browse"
	"github.com/prodipto2001/journal-stitch/pkg/composer"
	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/journal"
	"github.com/prodipto2001/journal-stitch/pkg/ocr"
	"github.com/prodipto2001/journal-stitch/pkg/profile"
	"github.com/prodipto2001/journal-stitch/pkg/scan"
	"github.com/prodipto2001/journal-stitch/pkg/store"
	"github.com/prodipto2001/journal-stitch/pkg/weather"
)

// MissingKeyMessage is the exact error the OCR endpoint returns when the
// provider credential is absent from the environment.
const MissingKeyMessage = "Missing GEMINI_API_KEY in environment."

// canvasBounds is the composer canvas the API submits against. It matches
// the front end's canvas dimensions.
var canvasBounds = composer.Bounds{W: 960, H: 720}

type Handlers struct {
	journal   *journal.Service
	pipeline  *scan.Pipeline
	extractor scan.TextExtractor
	weather   *weather.Client
	store     store.Persistence
}

func NewHandlers(j *journal.Service, pipeline *scan.Pipeline, extractor scan.TextExtractor, w *weather.Client, p store.Persistence) *Handlers {
	return &Handlers{
		journal:   j,
		pipeline:  pipeline,
		extractor: extractor,
		weather:   w,
		store:     p,
	}
}

// HandleOCR is the pass-through OCR proxy: {mimeType, base64} in, {text} out.
func (h *Handlers) HandleOCR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		MimeType string `json:"mimeType"`
		Base64   string `json:"base64"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.MimeType == "" || req.Base64 == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mimeType and base64 are required"})
		return
	}

	text, err := h.extractor.Extract(r.Context(), req.MimeType, req.Base64)
	if err != nil {
		if errors.Is(err, ocr.ErrMissingKey) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": MissingKeyMessage})
			return
		}
		log.Printf("ocr error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "Text extraction failed for all configured models.",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// HandleScan runs the full scan pipeline on an uploaded data URI and commits
// the resulting entry.
func (h *Handlers) HandleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Src string `json:"src"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	e, err := h.pipeline.Scan(r.Context(), req.Src)
	switch {
	case errors.Is(err, scan.ErrScanInFlight):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	case errors.Is(err, scan.ErrNotImage):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": scan.NotImageMessage})
		return
	case err != nil:
		log.Printf("scan error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, e)
}

type draftImage struct {
	Src string `json:"src"`
}

type draftNote struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type draftPayload struct {
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Mood    string       `json:"mood"`
	Images  []draftImage `json:"images"`
	Notes   []draftNote  `json:"notes"`
}

// HandleEntries lists the filtered journal (GET) or submits a draft (POST).
func (h *Handlers) HandleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listEntries(w, r)
	case http.MethodPost:
		h.createEntry(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (h *Handlers) listEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var on *time.Time
	if v := r.URL.Query().Get("on"); v != "" {
		day, err := time.ParseInLocation(entry.LayoutKey, v, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid 'on' date, want YYYY-MM-DD"})
			return
		}
		on = &day
	}

	entries := browse.Filter(h.journal.All(), query, on)
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"total":   len(entries),
	})
}

func (h *Handlers) createEntry(w http.ResponseWriter, r *http.Request) {
	var req draftPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	c := composer.New(canvasBounds)
	c.Title = req.Title
	c.Content = req.Content
	if req.Mood != "" {
		if err := c.SetMood(req.Mood); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}
	for _, img := range req.Images {
		c.PlaceImage(img.Src)
	}
	for _, n := range req.Notes {
		sn := c.AddStickyNote()
		c.SetNoteText(sn.ID, n.Text)
		c.SetNotePosition(sn.ID, n.X, n.Y)
	}

	e, err := c.Submit()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, h.journal.Append(e))
}

// HandleEntry patches a single entry's title/content.
func (h *Handlers) HandleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/entries/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entry id"})
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !h.journal.Update(id, journal.Patch{Title: req.Title, Content: req.Content}) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no entry with that id"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCalendar returns the per-day entry count index.
func (h *Handlers) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"days": browse.CalendarIndex(h.journal.All()),
	})
}

// HandleWeather proxies a one-shot coordinate-to-condition lookup.
func (h *Handlers) HandleWeather(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lon are required"})
		return
	}

	rep, err := h.weather.Current(r.Context(), lat, lon)
	if err != nil {
		log.Printf("weather error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "weather lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// HandleProfile reads (GET) or overwrites (PUT) the onboarding profile.
func (h *Handlers) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p := h.store.LoadProfile()
		if p == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no profile saved"})
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var p profile.Profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := p.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		h.store.SaveProfile(&p)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
