// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

// Action is the closed set of cart state transitions.
//
// # Why a sealed interface?
//
// The cart mutates exclusively through tagged action variants dispatched into
// [Reduce]. The unexported marker method seals the set: no package outside
// cart can introduce a new transition, so the switch in Reduce is exhaustive.
type Action interface {
	isAction()
}

// AddItem merges a line item into the cart. If an item with the same
// ProductID already exists, its quantity is incremented by Quantity;
// otherwise the item is appended with that quantity.
type AddItem struct {
	Item LineItem
	// Quantity to add. Values below 1 are clamped to 1 defensively.
	Quantity int
}

// RemoveItem deletes the line item with the given ProductID.
// Removing an absent product is a no-op, not an error.
type RemoveItem struct {
	ProductID string
}

// SetQuantity replaces the quantity of the line item with the given
// ProductID. A quantity of zero or below is equivalent to [RemoveItem].
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// Clear resets the cart to the empty state.
type Clear struct{}

// Load replaces the item list wholesale. It is used exactly once per cart,
// when the store hydrates from a persisted snapshot; it never merges.
type Load struct {
	Items []LineItem
}

func (AddItem) isAction()     {}
func (RemoveItem) isAction()  {}
func (SetQuantity) isAction() {}
func (Clear) isAction()       {}
func (Load) isAction()        {}

// Reduce computes the next cart state from the previous state and an action.
//
// # Purity
//
// Reduce never mutates its inputs: the returned State owns freshly copied
// item slices, so callers can compare old and new states by value in tests.
// Totals are recomputed on every branch, never carried over.
func Reduce(state State, action Action) State {
	switch act := action.(type) {

	case AddItem:
		quantity := act.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items := cloneItems(state.Items)

		// Merge with an existing line item when the product is already present.
		for i := range items {
			if items[i].ProductID == act.Item.ProductID {
				items[i].Quantity += quantity
				return withTotals(items)
			}
		}

		// Otherwise append a new line item carrying the requested quantity.
		added := act.Item.clone()
		added.Quantity = quantity
		return withTotals(append(items, added))

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != act.ProductID {
				items = append(items, item.clone())
			}
		}
		return withTotals(items)

	case SetQuantity:
		// A non-positive quantity is a removal, never a stored zero.
		if act.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: act.ProductID})
		}

		items := cloneItems(state.Items)
		for i := range items {
			if items[i].ProductID == act.ProductID {
				items[i].Quantity = act.Quantity
			}
		}
		return withTotals(items)

	case Clear:
		return EmptyState()

	case Load:
		return withTotals(cloneItems(act.Items))

	default:
		// Unknown actions leave the state untouched.
		return state
	}
}
