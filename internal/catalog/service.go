// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/pkg/pagination"
	"github.com/lamnguyen/shopora/pkg/slice"
)

// Service serves the product inventory.
//
// The inventory is immutable after construction, so reads need no locking.
type Service struct {
	logger   *slog.Logger
	products []Product
	byID     map[string]*Product
	bySlug   map[string]*Product
}

// NewService constructs a catalog [Service] over the given inventory.
func NewService(products []Product, logger *slog.Logger) *Service {
	service := &Service{
		logger:   logger,
		products: products,
		byID:     make(map[string]*Product, len(products)),
		bySlug:   make(map[string]*Product, len(products)),
	}

	for index := range products {
		product := &products[index]
		service.byID[product.ID] = product
		service.bySlug[product.Slug] = product
	}

	return service
}

// List returns one page of products, optionally filtered by category.
//
// # Returns
//
// The page slice plus total count over the filtered set. An out-of-range
// page yields an empty slice, not an error.
func (service *Service) List(_ context.Context, params pagination.Params, categories []string) ([]Product, int) {
	filtered := service.products
	if len(categories) > 0 {
		filtered = slice.Filter(service.products, func(product Product) bool {
			for _, category := range categories {
				if strings.EqualFold(product.Category, category) {
					return true
				}
			}
			return false
		})
	}

	total := len(filtered)
	if filtered == nil {
		filtered = []Product{}
	}

	start := params.Offset()
	if start >= total {
		return []Product{}, total
	}

	end := start + params.Limit
	if end > total {
		end = total
	}

	return filtered[start:end], total
}

// FindByID returns the product with the given ID.
//
// Returns [apperr.NotFound] if the product does not exist.
func (service *Service) FindByID(_ context.Context, productID string) (*Product, error) {
	product, ok := service.byID[productID]
	if !ok {
		return nil, apperr.NotFound("Product")
	}

	copied := *product
	return &copied, nil
}

// FindBySlug returns the product with the given URL slug.
//
// Returns [apperr.NotFound] if the product does not exist.
func (service *Service) FindBySlug(_ context.Context, productSlug string) (*Product, error) {
	product, ok := service.bySlug[productSlug]
	if !ok {
		return nil, apperr.NotFound("Product")
	}

	copied := *product
	return &copied, nil
}
