package model

import "time"

// Order statuses. Status defaults to pending on create.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order represents an order record in the database. Items holds the
// ordered product ids; Total is trusted from the caller and never
// recomputed from the items.
type Order struct {
	ID        string
	UserID    string
	Items     []string
	Total     float64
	Status    string
	CreatedAt time.Time
}

// CreateOrderRequest represents an order creation request. Status and
// creation time are stamped server-side.
type CreateOrderRequest struct {
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
	Total      float64  `json:"total"`
}

// UpdateOrderRequest is a partial update; nil fields are left untouched.
type UpdateOrderRequest struct {
	ProductIDs *[]string `json:"productIds"`
	Total      *float64  `json:"total"`
	Status     *string   `json:"status"`
}

// OrderResponse represents order data returned by the API.
type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []string  `json:"items"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
