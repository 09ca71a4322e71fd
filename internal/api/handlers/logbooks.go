package handlers

import (
	"encoding/json"
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/ports"
	"io"
	"net/http"
	"strings"
	"time"
)

// LogbookHandler reads and edits the driver's per-day logbook pages.
type LogbookHandler struct {
	Logbooks ports.LogbookRepository
}

// Pages serves GET and POST /trips/{id}/logbooks.
func (h *LogbookHandler) Pages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.upsert(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *LogbookHandler) list(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	res := dto.ListLogbookPagesResponse{Results: []dto.LogbookPageResponse{}}

	// An unparsable date filter matches nothing rather than failing, but the
	// trip must still exist.
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	validDate := true
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			validDate = false
			date = ""
		}
	}

	pages, err := h.Logbooks.ListPages(r.Context(), id, date)
	if err != nil {
		writeServiceError(w, r, "list logbook pages", err)
		return
	}
	if !validDate {
		pages = nil
	}

	for _, p := range pages {
		res.Results = append(res.Results, dto.NewLogbookPageResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *LogbookHandler) upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req dto.LogbookUpsertRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	req.Date = strings.TrimSpace(req.Date)
	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if req.Index < 0 {
		writeError(w, r, http.StatusBadRequest, "index must be >= 1")
		return
	}
	if req.SleeperBerth != nil && req.SleeperBerth.Active && strings.TrimSpace(req.SleeperBerth.Time) != "" {
		if _, err := domain.ParseClock(req.SleeperBerth.Time); err != nil {
			writeError(w, r, http.StatusBadRequest, "sleeper_berth.time must be HH:MM")
			return
		}
	}

	page, err := h.Logbooks.UpsertPage(r.Context(), id, req.ToDomain())
	if err != nil {
		writeServiceError(w, r, "upsert logbook page", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewLogbookPageResponse(page))
}
