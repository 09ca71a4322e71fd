package api

import (
	"hos-recap-service/internal/api/handlers"
	"hos-recap-service/internal/ports"
	"hos-recap-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(trips ports.TripRepository, pages ports.LogbookRepository, builder *services.SheetBuilder) http.Handler {
	mux := http.NewServeMux()

	sheetHandler := &handlers.SheetHandler{Builder: builder}
	tripHandler := &handlers.TripHandler{
		Trips:    trips,
		Logbooks: pages,
		Builder:  builder,
	}
	logbookHandler := &handlers.LogbookHandler{Logbooks: pages}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sheets", sheetHandler.Compute)
	mux.HandleFunc("/trips", tripHandler.Collection)
	mux.HandleFunc("/trips/{id}", tripHandler.Get)
	mux.HandleFunc("/trips/{id}/sheets", tripHandler.Sheets)
	mux.HandleFunc("/trips/{id}/logbooks", logbookHandler.Pages)

	return requestIDMiddleware(loggingMiddleware(mux))
}
