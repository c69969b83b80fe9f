// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/cart"
)

func phone() cart.LineItem {
	return cart.LineItem{
		ProductID: "prod-101",
		Name:      "iPhone 15 Pro Max 256GB",
		UnitPrice: 9999,
		Quantity:  1,
	}
}

func headphones() cart.LineItem {
	return cart.LineItem{
		ProductID: "prod-456",
		Name:      "Wireless Noise-Cancelling Headphones",
		UnitPrice: 199.50,
		Quantity:  1,
	}
}

/*
TestReduce_AddItem_Merge verifies that adding a product already in the cart
increments its quantity on a single line item instead of duplicating it.
*/
func TestReduce_AddItem_Merge(t *testing.T) {
	state := cart.EmptyState()
	state = cart.Reduce(state, cart.AddItem{Item: phone(), Quantity: 2})
	state = cart.Reduce(state, cart.AddItem{Item: phone(), Quantity: 3})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, 5, state.ItemCount)
	assert.InDelta(t, 5*9999.0, state.Total, 1e-9)
}

/*
TestReduce_AddItem_ClampsQuantity verifies that non-positive add quantities
are treated as one.
*/
func TestReduce_AddItem_ClampsQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantQuantity int
	}{
		{"zero_becomes_one", 0, 1},
		{"negative_becomes_one", -5, 1},
		{"positive_kept", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: tt.quantity})

			require.Len(t, state.Items, 1)
			assert.Equal(t, tt.wantQuantity, state.Items[0].Quantity)
		})
	}
}

/*
TestReduce_RemoveItem verifies removal by product ID, including the no-op
contract for products not in the cart.
*/
func TestReduce_RemoveItem(t *testing.T) {
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 2})
	state = cart.Reduce(state, cart.AddItem{Item: headphones(), Quantity: 1})

	// Removing an absent product changes nothing.
	unchanged := cart.Reduce(state, cart.RemoveItem{ProductID: "prod-missing"})
	assert.True(t, cart.ItemsEqual(state.Items, unchanged.Items))

	// Removing a present product deletes exactly that line item.
	next := cart.Reduce(state, cart.RemoveItem{ProductID: "prod-101"})
	require.Len(t, next.Items, 1)
	assert.Equal(t, "prod-456", next.Items[0].ProductID)
	assert.Equal(t, 1, next.ItemCount)
	assert.InDelta(t, 199.50, next.Total, 1e-9)
}

/*
TestReduce_SetQuantity_ZeroRemoves verifies that setting a quantity of zero
or below removes the line item — a zero quantity is never stored.
*/
func TestReduce_SetQuantity_ZeroRemoves(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 2})
			next := cart.Reduce(state, cart.SetQuantity{ProductID: "prod-101", Quantity: tt.quantity})

			assert.Empty(t, next.Items)
			assert.Equal(t, 0, next.ItemCount)
			assert.Zero(t, next.Total)
		})
	}
}

/*
TestReduce_SetQuantity_Replaces verifies that a positive quantity replaces
the stored one outright rather than accumulating.
*/
func TestReduce_SetQuantity_Replaces(t *testing.T) {
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 5})
	next := cart.Reduce(state, cart.SetQuantity{ProductID: "prod-101", Quantity: 2})

	require.Len(t, next.Items, 1)
	assert.Equal(t, 2, next.Items[0].Quantity)
	assert.Equal(t, 2, next.ItemCount)
}

/*
TestReduce_Clear verifies the wholesale reset to the empty state.
*/
func TestReduce_Clear(t *testing.T) {
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 2})
	state = cart.Reduce(state, cart.AddItem{Item: headphones(), Quantity: 1})

	next := cart.Reduce(state, cart.Clear{})

	assert.Empty(t, next.Items)
	assert.Equal(t, 0, next.ItemCount)
	assert.Zero(t, next.Total)
}

/*
TestReduce_Load_ReplacesWholesale verifies that hydration replaces the item
list entirely and recomputes totals; it never merges with existing items.
*/
func TestReduce_Load_ReplacesWholesale(t *testing.T) {
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 9})

	loaded := []cart.LineItem{
		{ProductID: "prod-456", Name: "Wireless Noise-Cancelling Headphones", UnitPrice: 199.50, Quantity: 2},
	}
	next := cart.Reduce(state, cart.Load{Items: loaded})

	require.Len(t, next.Items, 1)
	assert.Equal(t, "prod-456", next.Items[0].ProductID)
	assert.Equal(t, 2, next.ItemCount)
	assert.InDelta(t, 2*199.50, next.Total, 1e-9)
}

/*
TestReduce_TotalsInvariant verifies that after an arbitrary action sequence,
the cached totals always equal a fresh recomputation over the items.
*/
func TestReduce_TotalsInvariant(t *testing.T) {
	actions := []cart.Action{
		cart.AddItem{Item: phone(), Quantity: 2},
		cart.AddItem{Item: headphones(), Quantity: 1},
		cart.SetQuantity{ProductID: "prod-456", Quantity: 4},
		cart.AddItem{Item: phone(), Quantity: -1},
		cart.RemoveItem{ProductID: "prod-101"},
		cart.SetQuantity{ProductID: "prod-456", Quantity: 0},
		cart.AddItem{Item: headphones(), Quantity: 3},
	}

	state := cart.EmptyState()
	for _, action := range actions {
		state = cart.Reduce(state, action)

		wantCount := 0
		wantTotal := 0.0
		for _, item := range state.Items {
			wantCount += item.Quantity
			wantTotal += item.UnitPrice * float64(item.Quantity)
		}

		assert.Equal(t, wantCount, state.ItemCount)
		assert.InDelta(t, wantTotal, state.Total, 1e-9)
	}
}

/*
TestReduce_Purity verifies that Reduce never mutates the state it was given.
*/
func TestReduce_Purity(t *testing.T) {
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Item: phone(), Quantity: 2})

	_ = cart.Reduce(state, cart.SetQuantity{ProductID: "prod-101", Quantity: 7})
	_ = cart.Reduce(state, cart.RemoveItem{ProductID: "prod-101"})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.ItemCount)
}
