package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstack/shopstack-go/internal/envelope"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/service"
)

// OrderHandler handles HTTP requests for order CRUD.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

// HandleCreate handles POST /orders requests.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, envelope.OrderNotFound)
		return
	}

	writeEnvelope(w, envelope.Created, resp, "", nil)
}

// HandleList handles GET /orders requests.
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	orders, total, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err, envelope.OrderNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, orders, "", envelope.NewMeta(page, limit, total))
}

// HandleGet handles GET /orders/{id} requests.
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, envelope.OrderNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, resp, "", nil)
}

// HandleUpdate handles PUT /orders/{id} requests.
func (h *OrderHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err, envelope.OrderNotFound)
		return
	}

	writeEnvelope(w, envelope.Updated, resp, "", nil)
}

// HandleDelete handles DELETE /orders/{id} requests.
func (h *OrderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, envelope.OrderNotFound)
		return
	}

	writeEnvelope(w, envelope.Deleted, nil, "", nil)
}
