package handler

import (
	"net/http"

	"github.com/shopstack/shopstack-go/internal/envelope"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, envelope.NotFound)
		return
	}

	writeEnvelope(w, envelope.OK, resp, "", nil)
}
