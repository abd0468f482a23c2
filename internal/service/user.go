package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopstack/shopstack-go/internal/crypto"
	"github.com/shopstack/shopstack-go/internal/model"
)

// UserService handles account business logic.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Create registers a new account. Id, role and creation time are stamped
// server-side; the plaintext password is hashed before it reaches the store.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         model.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Create(ctx, user); err != nil {
		return model.UserResponse{}, storeErr(err)
	}

	return toUserResponse(user), nil
}

// List returns one page of accounts plus the total count.
func (s *UserService) List(ctx context.Context, page, limit int) ([]model.UserResponse, int64, error) {
	page, limit = clampPage(page, limit)

	users, err := s.store.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, storeErr(err)
	}

	out := make([]model.UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out, total, nil
}

// GetByID returns a single account. A malformed id is a not-found, never
// a store fault.
func (s *UserService) GetByID(ctx context.Context, id string) (model.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.UserResponse{}, ErrNotFound
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, storeErr(err)
	}

	return toUserResponse(user), nil
}

// Update merges the provided fields into the existing record and saves it.
// Fields absent from the request are left untouched.
func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (model.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.UserResponse{}, ErrNotFound
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, storeErr(err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil {
		hash, err := crypto.HashPassword(*req.Password)
		if err != nil {
			return model.UserResponse{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.store.Update(ctx, user); err != nil {
		return model.UserResponse{}, storeErr(err)
	}

	return toUserResponse(user), nil
}

// Delete removes an account by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

// toUserResponse strips the password hash from the outward-facing shape.
func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
