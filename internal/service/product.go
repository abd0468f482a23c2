package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopstack/shopstack-go/internal/model"
)

// ProductService handles catalog business logic.
type ProductService struct {
	store ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// Create adds a new product. Id and creation time are stamped server-side.
func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (model.ProductResponse, error) {
	if req.Name == "" {
		return model.ProductResponse{}, ErrNameRequired
	}

	p := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Create(ctx, p); err != nil {
		return model.ProductResponse{}, storeErr(err)
	}

	return toProductResponse(p), nil
}

// List returns one page of products plus the total count.
func (s *ProductService) List(ctx context.Context, page, limit int) ([]model.ProductResponse, int64, error) {
	page, limit = clampPage(page, limit)

	products, err := s.store.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, storeErr(err)
	}

	out := make([]model.ProductResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out, total, nil
}

// GetByID returns a single product. A malformed id is a not-found.
func (s *ProductService) GetByID(ctx context.Context, id string) (model.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.ProductResponse{}, ErrNotFound
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.ProductResponse{}, storeErr(err)
	}

	return toProductResponse(p), nil
}

// Update merges the provided fields into the existing record and saves it.
func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) (model.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.ProductResponse{}, ErrNotFound
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.ProductResponse{}, storeErr(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	if err := s.store.Update(ctx, p); err != nil {
		return model.ProductResponse{}, storeErr(err)
	}

	return toProductResponse(p), nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func toProductResponse(p *model.Product) model.ProductResponse {
	return model.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
