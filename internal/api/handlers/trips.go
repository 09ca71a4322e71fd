package handlers

import (
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/api/schema"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/ports"
	"hos-recap-service/internal/services"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// TripHandler stores planner output and serves trips and their sheets.
type TripHandler struct {
	Trips    ports.TripRepository
	Logbooks ports.LogbookRepository
	Builder  *services.SheetBuilder
}

// Collection serves POST /trips (create) and GET /trips (history).
func (h *TripHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TripHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if !decodeBody(w, r, func(s *schema.Schemas) *jsonschema.Schema { return s.Trip }, &req) {
		return
	}

	trip := req.ToDomain()
	if err := services.ValidateDays(trip.Logs); err != nil {
		writeServiceError(w, r, "create trip", err)
		return
	}

	if err := h.Trips.SaveTrip(r.Context(), trip); err != nil {
		writeServiceError(w, r, "create trip", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewTripResponse(trip))
}

func (h *TripHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = max(1, min(n, maxListLimit))
	}

	trips, err := h.Trips.ListTrips(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list trips", err)
		return
	}

	res := dto.ListTripsResponse{Results: make([]dto.TripSummaryResponse, 0, len(trips))}
	for _, t := range trips {
		res.Results = append(res.Results, dto.NewTripSummaryResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get serves GET /trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := h.Trips.GetTrip(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewTripResponse(trip))
}

// Sheets serves GET /trips/{id}/sheets, applying the sleeper berth
// overrides saved on each day's first logbook page.
func (h *TripHandler) Sheets(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := h.Trips.GetTrip(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "trip sheets", err)
		return
	}

	pages, err := h.Logbooks.ListPages(r.Context(), id, "")
	if err != nil {
		writeServiceError(w, r, "trip sheets", err)
		return
	}

	sheets, err := h.Builder.Build(r.Context(), services.BuildSheetsRequest{
		TripID:     trip.TripID.String(),
		Logs:       trip.Logs,
		TotalMiles: trip.TotalMiles(),
		Overrides:  domain.OverridesByDate(pages),
	})
	if err != nil {
		writeServiceError(w, r, "trip sheets", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListSheetsResponse(trip.TripID.String(), sheets))
}

func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
