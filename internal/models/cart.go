package models

import "github.com/Lixing-Zhang/grocify/internal/shopping"

// AddItemRequest adds a product to the cart. Quantity is the raw text the
// user typed; anything that is not a positive integer counts as 1.
type AddItemRequest struct {
	Product  string `json:"product" validate:"required,notblank,max=100"`
	Quantity string `json:"quantity,omitempty"`
}

// QuantityRequest edits a quantity in place. Text that is not a positive
// integer removes the item.
type QuantityRequest struct {
	Quantity string `json:"quantity"`
}

// CartView is the rendered state of a cart
type CartView struct {
	Lines      []shopping.CartLine `json:"lines"`
	TotalItems int                 `json:"totalItems"`
	LineCount  int                 `json:"lineCount"`
	Summary    string              `json:"summary"`
	Message    string              `json:"message,omitempty"`
}
