// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// Package cart implements the shopping cart state core.
//
// # Architecture
//
// The cart is modelled as a pure reducer over an immutable [State] value,
// wrapped by a [Store] that serializes dispatches, mirrors every item change
// to durable storage, and notifies subscribers. Entities in this file have
// no dependencies on outer layers (HTTP, Redis, PostgreSQL).
package cart

import "maps"

// LineItem is one product entry in the cart, keyed by product identifier,
// carrying its own quantity.
//
// # Rules
//   - At most one LineItem per ProductID exists in a cart.
//   - Quantity is never persisted at zero or below; such values trigger removal.
//   - UnitPrice is a non-negative amount in the store currency.
type LineItem struct {
	ProductID      string            `json:"product_id"`
	Name           string            `json:"name"`
	UnitPrice      float64           `json:"unit_price"`
	ImageURL       string            `json:"image_url"`
	Quantity       int               `json:"quantity"`
	Category       string            `json:"category,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// clone returns a deep copy of the line item so reducer outputs never share
// mutable state with their inputs.
func (item LineItem) clone() LineItem {
	copied := item
	if item.Specifications != nil {
		copied.Specifications = maps.Clone(item.Specifications)
	}
	return copied
}

// State is an immutable snapshot of a cart.
//
// # Invariant
//
// ItemCount and Total are pure functions of Items. They are recomputed by the
// reducer after every mutation and must never be assigned directly — any
// drift between the cached values and a fresh recomputation is a bug.
type State struct {
	// Items holds the line items in insertion order.
	Items []LineItem `json:"items"`
	// ItemCount is the sum of all line item quantities.
	ItemCount int `json:"item_count"`
	// Total is the sum of unit price times quantity across all line items.
	Total float64 `json:"total"`
}

// EmptyState returns the zero-value cart: no items, zero totals.
func EmptyState() State {
	return State{Items: []LineItem{}}
}

// withTotals returns a copy of the state with ItemCount and Total recomputed
// from the item list. Every reducer branch funnels through here.
func withTotals(items []LineItem) State {
	itemCount := 0
	total := 0.0

	for _, item := range items {
		itemCount += item.Quantity
		total += item.UnitPrice * float64(item.Quantity)
	}

	return State{
		Items:     items,
		ItemCount: itemCount,
		Total:     total,
	}
}

// cloneItems deep-copies a line item slice.
func cloneItems(items []LineItem) []LineItem {
	copied := make([]LineItem, len(items))
	for i, item := range items {
		copied[i] = item.clone()
	}
	return copied
}

// ItemsEqual reports whether two item sequences are identical in order,
// identity, and quantity. The [Store] uses it to decide whether a dispatch
// actually changed the items and therefore requires a storage write.
func ItemsEqual(a, b []LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ProductID != b[i].ProductID || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}
