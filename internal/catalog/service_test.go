// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/catalog"
	"github.com/lamnguyen/shopora/pkg/pagination"
)

func newService() *catalog.Service {
	return catalog.NewService(catalog.SeedProducts(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_List covers pagination bounds and the category filter.
*/
func TestService_List(t *testing.T) {
	ctx := context.Background()
	service := newService()

	all, total := service.List(ctx, pagination.Params{Page: 1, Limit: 100}, nil)
	assert.Equal(t, len(all), total)
	require.NotEmpty(t, all)

	// Category filter is case-insensitive and supports multiple values.
	fashion, fashionTotal := service.List(ctx, pagination.Params{Page: 1, Limit: 100}, []string{"Fashion"})
	assert.Equal(t, len(fashion), fashionTotal)
	for _, product := range fashion {
		assert.Equal(t, "fashion", product.Category)
	}

	both, bothTotal := service.List(ctx, pagination.Params{Page: 1, Limit: 100}, []string{"fashion", "home"})
	assert.Greater(t, bothTotal, fashionTotal)
	assert.Equal(t, len(both), bothTotal)

	// An out-of-range page yields an empty slice, not an error.
	empty, emptyTotal := service.List(ctx, pagination.Params{Page: 99, Limit: 100}, nil)
	assert.Empty(t, empty)
	assert.Equal(t, total, emptyTotal)
}

/*
TestService_Lookups verifies ID and slug point lookups plus the not-found path.
*/
func TestService_Lookups(t *testing.T) {
	ctx := context.Background()
	service := newService()

	product, err := service.FindByID(ctx, "prod-456")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Noise-Cancelling Headphones", product.Name)

	bySlug, err := service.FindBySlug(ctx, product.Slug)
	require.NoError(t, err)
	assert.Equal(t, product.ID, bySlug.ID)

	_, err = service.FindByID(ctx, "prod-missing")
	assert.Error(t, err)
}
