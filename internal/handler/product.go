package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopstack/shopstack-go/internal/envelope"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/service"
)

// ProductHandler handles HTTP requests for catalog CRUD. Writes are gated
// behind the admin role at route registration; this handler only shapes
// requests and responses.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// HandleCreate handles POST /products requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, envelope.ProductNotFound)
		return
	}

	writeEnvelope(w, envelope.Created, resp, "", nil)
}

// HandleList handles GET /products and GET /products/public/all requests.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	products, total, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err, envelope.ProductNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, products, "", envelope.NewMeta(page, limit, total))
}

// HandleGet handles GET /products/{id} requests.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, envelope.ProductNotFound)
		return
	}

	writeEnvelope(w, envelope.OK, resp, "", nil)
}

// HandleUpdate handles PUT /products/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err, envelope.ProductNotFound)
		return
	}

	writeEnvelope(w, envelope.Updated, resp, "", nil)
}

// HandleDelete handles DELETE /products/{id} requests.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, envelope.ProductNotFound)
		return
	}

	writeEnvelope(w, envelope.Deleted, nil, "", nil)
}
