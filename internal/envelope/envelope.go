// Package envelope defines the uniform response wrapper every handler
// emits: {code, message, data?, error?, meta?}. The status taxonomy is
// fixed; handlers pick a status and never shape payloads by hand.
package envelope

import "net/http"

// Status pairs an application code/message with the HTTP status it is
// served under.
type Status struct {
	Code    int
	Message string
	HTTP    int
}

var (
	OK              = Status{Code: 0, Message: "SUCCESS", HTTP: http.StatusOK}
	Created         = Status{Code: 1, Message: "CREATED", HTTP: http.StatusCreated}
	Updated         = Status{Code: 2, Message: "UPDATED", HTTP: http.StatusOK}
	Deleted         = Status{Code: 3, Message: "DELETED", HTTP: http.StatusOK}
	BadRequest      = Status{Code: 1000, Message: "BAD REQUEST", HTTP: http.StatusBadRequest}
	ValidationError = Status{Code: 1001, Message: "VALIDATION ERROR", HTTP: http.StatusBadRequest}
	Unauthorized    = Status{Code: 1002, Message: "UNAUTHORIZED", HTTP: http.StatusUnauthorized}
	Forbidden       = Status{Code: 1003, Message: "FORBIDDEN", HTTP: http.StatusForbidden}
	NotFound        = Status{Code: 1004, Message: "NOT FOUND", HTTP: http.StatusNotFound}
	UserNotFound    = Status{Code: 1100, Message: "USER NOT FOUND", HTTP: http.StatusNotFound}
	ProductNotFound = Status{Code: 1200, Message: "PRODUCT NOT FOUND", HTTP: http.StatusNotFound}
	OrderNotFound   = Status{Code: 1300, Message: "ORDER NOT FOUND", HTTP: http.StatusNotFound}
	Conflict        = Status{Code: 1400, Message: "CONFLICT", HTTP: http.StatusConflict}
	Duplicate       = Status{Code: 1401, Message: "DUPLICATE ENTRY", HTTP: http.StatusConflict}
	Internal        = Status{Code: 1500, Message: "INTERNAL SERVER ERROR", HTTP: http.StatusInternalServerError}
	TooManyRequests = Status{Code: 1429, Message: "TOO MANY REQUESTS", HTTP: http.StatusTooManyRequests}
)

// Meta carries pagination metadata for list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Envelope is the fixed response shape. Data and Error are omitted from
// the serialized form when absent rather than emitted as null.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Build constructs an envelope for the given status. data, errDetail and
// meta may each be zero-valued to leave the corresponding key out.
func Build(st Status, data any, errDetail string, meta *Meta) Envelope {
	return Envelope{
		Code:    st.Code,
		Message: st.Message,
		Data:    data,
		Error:   errDetail,
		Meta:    meta,
	}
}

// NewMeta derives pagination metadata from the requested page window and
// the total record count.
func NewMeta(page, limit int, total int64) *Meta {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &Meta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
