package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/shopstack/shopstack-go/internal/model"
)

// OrderRepository handles order persistence operations. Line-item ids are
// stored as a JSON array in a single column, matching the document shape
// of the order record.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order record.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	query := `INSERT INTO orders (id, user_id, items, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		o.ID, o.UserID, items, o.Total, o.Status, o.CreatedAt,
	)
	return err
}

// List retrieves one page of orders ordered by creation time.
func (r *OrderRepository) List(ctx context.Context, offset, limit int) ([]model.Order, error) {
	query := `SELECT id, user_id, items, total, status, created_at
		FROM orders ORDER BY created_at DESC, id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

// Count returns the total number of orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

// GetByID retrieves an order by id.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT id, user_id, items, total, status, created_at FROM orders WHERE id = ?`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

// Update writes the full merged order record back to the store.
func (r *OrderRepository) Update(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	query := `UPDATE orders SET user_id = ?, items = ?, total = ?, status = ? WHERE id = ?`

	_, err = r.db.ExecContext(ctx, query, o.UserID, items, o.Total, o.Status, o.ID)
	return err
}

// Delete removes an order, reporting ErrNotFound when no row was affected.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOrder(scan func(dest ...any) error) (*model.Order, error) {
	o := &model.Order{}
	var items []byte
	if err := scan(&o.ID, &o.UserID, &items, &o.Total, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
	}
	return o, nil
}
