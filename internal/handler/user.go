package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstack/shopstack-go/internal/envelope"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/service"
)

// UserHandler handles HTTP requests for account CRUD.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleCreate handles POST /users requests.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, envelope.UserNotFound)
		return
	}

	writeEnvelope(w, envelope.Created, resp, "", nil)
}

// HandleList handles GET /users requests.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	users, total, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err, envelope.UserNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, users, "", envelope.NewMeta(page, limit, total))
}

// HandleGet handles GET /users/{id} requests.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, envelope.UserNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, resp, "", nil)
}

// HandleUpdate handles PUT /users/{id} requests.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err, envelope.UserNotFound)
		return
	}

	writeEnvelope(w, envelope.Updated, resp, "", nil)
}

// HandleDelete handles DELETE /users/{id} requests.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, envelope.UserNotFound)
		return
	}

	writeEnvelope(w, envelope.Deleted, nil, "", nil)
}
