// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// HTTP delivery layer for the cart store.
//
// # Architecture
//
// The handler is a gatekeeper: it parses JSON payloads, validates input
// shape, resolves products through the catalog, and maps requests to store
// dispatches. It contains no cart logic — every mutation goes through the
// reducer via [Service].
package cart

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamnguyen/shopora/internal/catalog"
	"github.com/lamnguyen/shopora/internal/platform/middleware"
	requestutil "github.com/lamnguyen/shopora/internal/platform/request"
	"github.com/lamnguyen/shopora/internal/platform/respond"
	"github.com/lamnguyen/shopora/internal/platform/validate"
)

// ProductCatalog is the slice of the catalog the cart handler needs to turn
// a product ID into a line item.
//
// # Why an interface?
//
// Declaring it here decouples the cart's delivery layer from the catalog
// service implementation and lets tests inject a stub.
type ProductCatalog interface {
	// FindByID returns the product with the given ID.
	//
	// Returns [apperr.NotFound] if the product does not exist.
	FindByID(ctx context.Context, productID string) (*catalog.Product, error)
}

// Handler implements the cart HTTP endpoints.
type Handler struct {
	cartService *Service
	products    ProductCatalog
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, products ProductCatalog) *Handler {
	return &Handler{cartService: service, products: products}
}

// Routes returns a [chi.Router] configured with cart-specific routes.
//
// # Endpoints
//   - GET    /                    : Current cart state (items + totals).
//   - POST   /items               : Add a product to the cart.
//   - PUT    /items/{productID}   : Replace a line item's quantity.
//   - DELETE /items/{productID}   : Remove a line item.
//   - DELETE /                    : Clear the cart.
//
// All endpoints require the X-Cart-ID header ([middleware.RequireCart]).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireCart)

	router.Get("/", handler.state)
	router.Post("/items", handler.addItem)
	router.Put("/items/{productID}", handler.setQuantity)
	router.Delete("/items/{productID}", handler.removeItem)
	router.Delete("/", handler.clear)

	return router
}

// state handles GET /api/v1/cart requests.
func (handler *Handler) state(writer http.ResponseWriter, request *http.Request) {
	cartID, err := requestutil.RequiredCartID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	store := handler.cartService.Store(request.Context(), cartID)
	respond.OK(writer, store.State())
}

// addItemRequest represents the JSON payload for adding a product.
type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// addItem handles POST /api/v1/cart/items requests.
//
// # Returns
//   - Writes HTTP 200 OK with the new cart state on success.
//   - Writes HTTP 400 Bad Request if the payload shape is invalid.
//   - Writes HTTP 404 Not Found if the product does not exist.
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	cartID, err := requestutil.RequiredCartID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("product_id", input.ProductID).
		Min("quantity", input.Quantity, 0)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An omitted quantity defaults to 1, matching the storefront's
	// one-click "add to cart" behavior.
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	// ── 3. Catalog Resolution ─────────────────────────────────────────────

	product, err := handler.products.FindByID(request.Context(), input.ProductID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Store Dispatch ─────────────────────────────────────────────────

	state := handler.cartService.AddItem(request.Context(), cartID, LineItem{
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPrice:      product.Price,
		ImageURL:       product.ImageURL,
		Category:       product.Category,
		Brand:          product.Brand,
		Specifications: product.Specifications,
	}, input.Quantity)

	respond.OK(writer, state)
}

// setQuantityRequest represents the JSON payload for a quantity update.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// setQuantity handles PUT /api/v1/cart/items/{productID} requests.
//
// A quantity of zero or below removes the line item, per the store contract.
func (handler *Handler) setQuantity(writer http.ResponseWriter, request *http.Request) {
	cartID, err := requestutil.RequiredCartID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	productID := requestutil.Param(request, "productID")

	var input setQuantityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state := handler.cartService.SetQuantity(request.Context(), cartID, productID, input.Quantity)
	respond.OK(writer, state)
}

// removeItem handles DELETE /api/v1/cart/items/{productID} requests.
// Removing an absent product succeeds with the unchanged state.
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	cartID, err := requestutil.RequiredCartID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	productID := requestutil.Param(request, "productID")

	state := handler.cartService.RemoveItem(request.Context(), cartID, productID)
	respond.OK(writer, state)
}

// clear handles DELETE /api/v1/cart requests.
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	cartID, err := requestutil.RequiredCartID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state := handler.cartService.Clear(request.Context(), cartID)
	respond.OK(writer, state)
}
