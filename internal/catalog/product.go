// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// Package catalog implements the read-only product catalog.
//
// # Architecture
//
// The catalog backs the cart's delivery layer: line items are built from
// catalog products, never from client-supplied prices. Products are served
// from an in-memory seeded inventory; the package exposes listing with
// pagination plus point lookups by ID and slug.
package catalog

// Product is a single sellable catalog entry.
type Product struct {
	ID             string            `json:"id"`
	Slug           string            `json:"slug"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	ImageURL       string            `json:"image_url"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand,omitempty"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications,omitempty"`
}
