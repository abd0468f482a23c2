package service

import (
	"context"

	"github.com/shopstack/shopstack-go/internal/model"
)

// Store interfaces are satisfied by the MySQL repositories and by the
// in-memory fakes used in tests. Services receive them at composition
// time; there are no package-level singletons.

// UserStore is the persistence surface the account services depend on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

// ProductStore is the persistence surface the catalog service depends on.
type ProductStore interface {
	Create(ctx context.Context, p *model.Product) error
	List(ctx context.Context, offset, limit int) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderStore is the persistence surface the order service depends on.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	List(ctx context.Context, offset, limit int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id string) error
}
