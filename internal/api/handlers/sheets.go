package handlers

import (
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/api/schema"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/services"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SheetHandler computes day sheets for trips that are not stored.
type SheetHandler struct {
	Builder *services.SheetBuilder
}

func (h *SheetHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.SheetsRequest
	if !decodeBody(w, r, func(s *schema.Schemas) *jsonschema.Schema { return s.Sheets }, &req) {
		return
	}

	miles := req.DistanceMeters / domain.MetersPerMile
	if req.TotalMiles != nil {
		miles = *req.TotalMiles
	}

	overrides := make(map[string]domain.SleeperBerthOverride, len(req.SleeperBerth))
	for date, o := range req.SleeperBerth {
		overrides[date] = o.ToDomain()
	}

	sheets, err := h.Builder.Build(r.Context(), services.BuildSheetsRequest{
		Logs:       dto.ToDailyLogs(req.Logs),
		TotalMiles: miles,
		Overrides:  overrides,
	})
	if err != nil {
		writeServiceError(w, r, "compute sheets", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListSheetsResponse("", sheets))
}
