package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopstack/shopstack-go/internal/model"
)

var orderStatuses = map[string]bool{
	model.OrderStatusPending:   true,
	model.OrderStatusPaid:      true,
	model.OrderStatusShipped:   true,
	model.OrderStatusCancelled: true,
}

// OrderService handles order business logic. Totals are trusted from the
// caller and never recomputed from the line items.
type OrderService struct {
	store OrderStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// Create places a new order. Id, status and creation time are stamped
// server-side; status always starts as pending.
func (s *OrderService) Create(ctx context.Context, req model.CreateOrderRequest) (model.OrderResponse, error) {
	if req.UserID == "" {
		return model.OrderResponse{}, ErrUserIDRequired
	}

	o := &model.Order{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Items:     append([]string(nil), req.ProductIDs...),
		Total:     req.Total,
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, o); err != nil {
		return model.OrderResponse{}, storeErr(err)
	}

	return toOrderResponse(o), nil
}

// List returns one page of orders plus the total count.
func (s *OrderService) List(ctx context.Context, page, limit int) ([]model.OrderResponse, int64, error) {
	page, limit = clampPage(page, limit)

	orders, err := s.store.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, storeErr(err)
	}

	out := make([]model.OrderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out, total, nil
}

// GetByID returns a single order. A malformed id is a not-found.
func (s *OrderService) GetByID(ctx context.Context, id string) (model.OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.OrderResponse{}, ErrNotFound
	}

	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.OrderResponse{}, storeErr(err)
	}

	return toOrderResponse(o), nil
}

// Update merges the provided fields into the existing record and saves it.
// Status values outside the known set are rejected.
func (s *OrderService) Update(ctx context.Context, id string, req model.UpdateOrderRequest) (model.OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.OrderResponse{}, ErrNotFound
	}
	if req.Status != nil && !orderStatuses[*req.Status] {
		return model.OrderResponse{}, ErrInvalidStatus
	}

	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.OrderResponse{}, storeErr(err)
	}

	if req.ProductIDs != nil {
		o.Items = append([]string(nil), (*req.ProductIDs)...)
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
	if req.Status != nil {
		o.Status = *req.Status
	}

	if err := s.store.Update(ctx, o); err != nil {
		return model.OrderResponse{}, storeErr(err)
	}

	return toOrderResponse(o), nil
}

// Delete removes an order by id.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func toOrderResponse(o *model.Order) model.OrderResponse {
	items := o.Items
	if items == nil {
		items = []string{}
	}
	return model.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
