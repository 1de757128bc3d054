package shopping

import "errors"

var (
	ErrBlankListName = errors.New("list name cannot be empty")
	ErrEmptyCart     = errors.New("cart is empty")
)
