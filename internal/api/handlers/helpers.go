package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"hos-recap-service/internal/api/schema"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/platform/obs"
	"hos-recap-service/internal/ports"
	"io"
	"log"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps engine and repository errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusUnprocessableEntity, ve.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		log.Printf("%s failed: req_id=%s err=%v", op, obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a single JSON object, checks it against the schema picked
// by pick (when schemas are available) and decodes it strictly into dst.
// On failure it writes the response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, pick func(*schema.Schemas) *jsonschema.Schema, dst any) bool {
	defer r.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "could not read body")
		return false
	}
	if len(raw) > maxBodyBytes {
		writeError(w, r, http.StatusRequestEntityTooLarge, "body too large")
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	schemas, err := schema.Load()
	if err != nil {
		log.Printf("schema load failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return false
	}
	if err := schema.Validate(pick(schemas), raw); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("schema validation failed: %v", err))
		return false
	}

	return true
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}
