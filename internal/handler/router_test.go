package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopstack/shopstack-go/internal/middleware"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/repository"
	"github.com/shopstack/shopstack-go/internal/service"
)

const testSecret = "test-secret"

// memStore is a single in-memory fake backing all three store interfaces,
// keyed the way the repositories key their tables. calls counts store
// operations so tests can assert the role gate short-circuits before any
// store access.
type memStore struct {
	users    map[string]model.User
	products map[string]model.Product
	orders   map[string]model.Order

	userOrder    []string
	productOrder []string
	orderOrder   []string

	calls int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]model.User),
		products: make(map[string]model.Product),
		orders:   make(map[string]model.Order),
	}
}

type userStore struct{ s *memStore }

func (f userStore) Create(_ context.Context, u *model.User) error {
	f.s.calls++
	for _, existing := range f.s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.s.users[u.ID] = *u
	f.s.userOrder = append(f.s.userOrder, u.ID)
	return nil
}

func (f userStore) List(_ context.Context, offset, limit int) ([]model.User, error) {
	f.s.calls++
	var out []model.User
	for i := offset; i < len(f.s.userOrder) && len(out) < limit; i++ {
		out = append(out, f.s.users[f.s.userOrder[i]])
	}
	return out, nil
}

func (f userStore) Count(_ context.Context) (int64, error) {
	f.s.calls++
	return int64(len(f.s.userOrder)), nil
}

func (f userStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.s.calls++
	u, ok := f.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.s.calls++
	for _, u := range f.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f userStore) Update(_ context.Context, u *model.User) error {
	f.s.calls++
	f.s.users[u.ID] = *u
	return nil
}

func (f userStore) Delete(_ context.Context, id string) error {
	f.s.calls++
	if _, ok := f.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.users, id)
	return nil
}

type productStore struct{ s *memStore }

func (f productStore) Create(_ context.Context, p *model.Product) error {
	f.s.calls++
	f.s.products[p.ID] = *p
	f.s.productOrder = append(f.s.productOrder, p.ID)
	return nil
}

func (f productStore) List(_ context.Context, offset, limit int) ([]model.Product, error) {
	f.s.calls++
	var out []model.Product
	for i := offset; i < len(f.s.productOrder) && len(out) < limit; i++ {
		out = append(out, f.s.products[f.s.productOrder[i]])
	}
	return out, nil
}

func (f productStore) Count(_ context.Context) (int64, error) {
	f.s.calls++
	return int64(len(f.s.productOrder)), nil
}

func (f productStore) GetByID(_ context.Context, id string) (*model.Product, error) {
	f.s.calls++
	p, ok := f.s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f productStore) Update(_ context.Context, p *model.Product) error {
	f.s.calls++
	f.s.products[p.ID] = *p
	return nil
}

func (f productStore) Delete(_ context.Context, id string) error {
	f.s.calls++
	if _, ok := f.s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.products, id)
	return nil
}

type orderStore struct{ s *memStore }

func (f orderStore) Create(_ context.Context, o *model.Order) error {
	f.s.calls++
	f.s.orders[o.ID] = *o
	f.s.orderOrder = append(f.s.orderOrder, o.ID)
	return nil
}

func (f orderStore) List(_ context.Context, offset, limit int) ([]model.Order, error) {
	f.s.calls++
	var out []model.Order
	for i := offset; i < len(f.s.orderOrder) && len(out) < limit; i++ {
		out = append(out, f.s.orders[f.s.orderOrder[i]])
	}
	return out, nil
}

func (f orderStore) Count(_ context.Context) (int64, error) {
	f.s.calls++
	return int64(len(f.s.orderOrder)), nil
}

func (f orderStore) GetByID(_ context.Context, id string) (*model.Order, error) {
	f.s.calls++
	o, ok := f.s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f orderStore) Update(_ context.Context, o *model.Order) error {
	f.s.calls++
	f.s.orders[o.ID] = *o
	return nil
}

func (f orderStore) Delete(_ context.Context, id string) error {
	f.s.calls++
	if _, ok := f.s.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.orders, id)
	return nil
}

// newTestRouter wires the full pipeline the way cmd/api/main.go does,
// over the in-memory store.
func newTestRouter(store *memStore) http.Handler {
	authService := service.NewAuthService(userStore{store}, testSecret, time.Hour)
	userService := service.NewUserService(userStore{store})
	productService := service.NewProductService(productStore{store})
	orderService := service.NewOrderService(orderStore{store})

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	productHandler := NewProductHandler(productService)
	orderHandler := NewOrderHandler(orderService)

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.HandleCreate)
		r.Get("/", userHandler.HandleList)
		r.Get("/{id}", userHandler.HandleGet)
		r.Put("/{id}", userHandler.HandleUpdate)
		r.Delete("/{id}", userHandler.HandleDelete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/public/all", productHandler.HandleList)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(testSecret, model.RoleUser, model.RoleAdmin))
			r.Get("/", productHandler.HandleList)
			r.Get("/{id}", productHandler.HandleGet)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(testSecret, model.RoleAdmin))
			r.Post("/", productHandler.HandleCreate)
			r.Put("/{id}", productHandler.HandleUpdate)
			r.Delete("/{id}", productHandler.HandleDelete)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.HandleCreate)
		r.Get("/", orderHandler.HandleList)
		r.Get("/{id}", orderHandler.HandleGet)
		r.Put("/{id}", orderHandler.HandleUpdate)
		r.Delete("/{id}", orderHandler.HandleDelete)
	})

	return r
}
