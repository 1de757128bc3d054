package shopping

// CartLine is one product in the cart. Quantity is always at least 1.
type CartLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// Cart is the unsaved product->quantity selection of a session.
//
// Cart is a value: every operation returns a new Cart and leaves the
// receiver untouched. Lines keep insertion order.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart
func NewCart() Cart {
	return Cart{}
}

func (c Cart) index(product string) int {
	for i, l := range c.lines {
		if l.Product == product {
			return i
		}
	}
	return -1
}

func (c Cart) clone() []CartLine {
	lines := make([]CartLine, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	return lines
}

// Add merges quantity into the product's line, creating it if needed, and
// returns the resulting quantity. Non-positive quantities count as
// DefaultAddQuantity.
func (c Cart) Add(product string, quantity int) (Cart, int) {
	if quantity <= 0 {
		quantity = DefaultAddQuantity
	}

	lines := c.clone()
	if i := c.index(product); i >= 0 {
		lines[i].Quantity += quantity
		return Cart{lines: lines}, lines[i].Quantity
	}
	lines = append(lines, CartLine{Product: product, Quantity: quantity})
	return Cart{lines: lines}, quantity
}

// SetQuantity overwrites the product's quantity. A zero or negative quantity
// removes the line; a positive quantity for an absent product adds it.
func (c Cart) SetQuantity(product string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(product)
	}

	lines := c.clone()
	if i := c.index(product); i >= 0 {
		lines[i].Quantity = quantity
		return Cart{lines: lines}
	}
	lines = append(lines, CartLine{Product: product, Quantity: quantity})
	return Cart{lines: lines}
}

// Remove drops the product's line. Removing an absent product is a no-op.
func (c Cart) Remove(product string) Cart {
	i := c.index(product)
	if i < 0 {
		return c
	}
	lines := make([]CartLine, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:i]...)
	lines = append(lines, c.lines[i+1:]...)
	return Cart{lines: lines}
}

// Clear returns an empty cart
func (c Cart) Clear() Cart {
	return Cart{}
}

// Quantity returns the product's quantity and whether it is in the cart
func (c Cart) Quantity(product string) (int, bool) {
	if i := c.index(product); i >= 0 {
		return c.lines[i].Quantity, true
	}
	return 0, false
}

// Lines returns a copy of the cart lines in insertion order
func (c Cart) Lines() []CartLine {
	return c.clone()
}

// TotalItems is the sum of all quantities
func (c Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// LineCount is the number of distinct products
func (c Cart) LineCount() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
