package service

import (
	"context"

	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/repository"
)

// In-memory store fakes. Insertion order is preserved so list pagination
// is deterministic. calls counts every store operation so tests can assert
// that a path never touched the store. A non-nil err fails every op.

type fakeUserStore struct {
	users map[string]model.User
	order []string
	calls int
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.users[u.ID] = *u
	f.order = append(f.order, u.ID)
	return nil
}

func (f *fakeUserStore) List(_ context.Context, offset, limit int) ([]model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.User
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.users[f.order[i]])
	}
	return out, nil
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.order)), nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Update(_ context.Context, u *model.User) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeProductStore struct {
	products map[string]model.Product
	order    []string
	calls    int
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]model.Product)}
}

func (f *fakeProductStore) Create(_ context.Context, p *model.Product) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.products[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProductStore) List(_ context.Context, offset, limit int) ([]model.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Product
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.products[f.order[i]])
	}
	return out, nil
}

func (f *fakeProductStore) Count(_ context.Context) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.order)), nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*model.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Update(_ context.Context, p *model.Product) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeOrderStore struct {
	orders map[string]model.Order
	order  []string
	calls  int
	err    error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]model.Order)}
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.orders[o.ID] = *o
	f.order = append(f.order, o.ID)
	return nil
}

func (f *fakeOrderStore) List(_ context.Context, offset, limit int) ([]model.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Order
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.orders[f.order[i]])
	}
	return out, nil
}

func (f *fakeOrderStore) Count(_ context.Context) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.order)), nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*model.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderStore) Update(_ context.Context, o *model.Order) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}
