// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/cart"
	"github.com/lamnguyen/shopora/internal/catalog"
	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/constants"
	"github.com/lamnguyen/shopora/internal/platform/middleware"
)

// stubCatalog resolves exactly one known product for handler tests.
type stubCatalog struct{}

func (stubCatalog) FindByID(_ context.Context, productID string) (*catalog.Product, error) {
	if productID != "prod-101" {
		return nil, apperr.NotFound("Product")
	}
	return &catalog.Product{ID: "prod-101", Name: "Smartphone", Price: 9999}, nil
}

// newCartRouter mounts the cart routes behind the identity middleware, the
// way the API server wires them.
func newCartRouter(service *cart.Service) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.ClientIdentity())
	router.Mount("/", cart.NewHandler(service, stubCatalog{}).Routes())
	return router
}

/*
TestHandler_AddItemRejectsNegativeQuantity verifies that a negative quantity
is rejected at the boundary with 400 and never reaches the store.
*/
func TestHandler_AddItemRejectsNegativeQuantity(t *testing.T) {
	service := cart.NewService(cart.NewMemorySnapshotRepository(), testLogger())
	router := newCartRouter(service)

	body := strings.NewReader(`{"product_id":"prod-101","quantity":-3}`)
	request := httptest.NewRequest(http.MethodPost, "/items", body)
	request.Header.Set(constants.HeaderXCartID, "cart-1")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, service.Store(context.Background(), "cart-1").State().Items)
}

/*
TestHandler_AddItemDefaultsQuantityToOne verifies the one-click add behavior:
a payload without a quantity adds a single unit of the product.
*/
func TestHandler_AddItemDefaultsQuantityToOne(t *testing.T) {
	service := cart.NewService(cart.NewMemorySnapshotRepository(), testLogger())
	router := newCartRouter(service)

	body := strings.NewReader(`{"product_id":"prod-101"}`)
	request := httptest.NewRequest(http.MethodPost, "/items", body)
	request.Header.Set(constants.HeaderXCartID, "cart-1")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	state := service.Store(context.Background(), "cart-1").State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "prod-101", state.Items[0].ProductID)
	assert.Equal(t, 1, state.Items[0].Quantity)
}
