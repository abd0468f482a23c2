package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopstack/shopstack-go/internal/envelope"
	"github.com/shopstack/shopstack-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// writeEnvelope is the single exit point for handler responses; the HTTP
// status always comes from the envelope status.
func writeEnvelope(w http.ResponseWriter, st envelope.Status, data any, errDetail string, meta *envelope.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(st.HTTP)
	json.NewEncoder(w).Encode(envelope.Build(st, data, errDetail, meta))
}

// decodeJSON reads a size-limited JSON body into dst. A false return means
// the error envelope has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeEnvelope(w, envelope.BadRequest, nil, "request body too large", nil)
			return false
		}
		writeEnvelope(w, envelope.BadRequest, nil, "invalid request body", nil)
		return false
	}
	return true
}

// parsePagination reads page/limit query params with defaults 1/10,
// clamped to at least 1.
func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			limit = n
		}
	}
	return page, limit
}

// writeServiceError maps a service fault to its envelope. notFound picks
// the entity-specific not-found status. Unclassified faults are logged and
// surface as the internal status, never as a raw error.
func writeServiceError(w http.ResponseWriter, err error, notFound envelope.Status) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeEnvelope(w, envelope.ValidationError, nil, err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		writeEnvelope(w, notFound, nil, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeEnvelope(w, envelope.Unauthorized, nil, err.Error(), nil)
	case errors.Is(err, service.ErrEmailTaken):
		writeEnvelope(w, envelope.Duplicate, nil, err.Error(), nil)
	default:
		slog.Error("service error", "error", err)
		writeEnvelope(w, envelope.Internal, nil, "internal server error", nil)
	}
}
