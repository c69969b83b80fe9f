// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package catalog

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lamnguyen/shopora/internal/platform/request"
	"github.com/lamnguyen/shopora/internal/platform/respond"
	"github.com/lamnguyen/shopora/pkg/pagination"
	"github.com/lamnguyen/shopora/pkg/query"
)

// Handler implements the catalog HTTP endpoints.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] configured with catalog-specific routes.
//
// # Endpoints
//   - GET /               : Paginated product list (optional ?category=).
//   - GET /{idOrSlug}     : Single product by ID or by URL slug.
//
// Catalog reads are public: no session or cart identity required.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{idOrSlug}", handler.get)

	return router
}

// list handles GET /api/v1/products requests.
//
// The category filter accepts a comma-separated list:
// ?category=electronics,home matches either category.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	categories := query.StringSlice(request.URL.Query().Get("category"))

	products, total := handler.catalogService.List(request.Context(), params, categories)

	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /api/v1/products/{idOrSlug} requests.
//
// Rather than guess whether the path segment is an ID or a slug, the lookup
// tries the ID index first and falls back to the slug index.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	idOrSlug := strings.TrimSpace(requestutil.Param(request, "idOrSlug"))

	product, err := handler.catalogService.FindByID(request.Context(), idOrSlug)
	if err != nil {
		product, err = handler.catalogService.FindBySlug(request.Context(), idOrSlug)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}
