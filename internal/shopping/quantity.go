package shopping

import (
	"strconv"
	"strings"
)

// DefaultAddQuantity is used when an add request carries no usable quantity
const DefaultAddQuantity = 1

// ParseAddQuantity reads quantity text entered for an add. Anything that is
// not a positive integer becomes DefaultAddQuantity.
func ParseAddQuantity(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return DefaultAddQuantity
	}
	return n
}

// ParseEditQuantity reads quantity text entered for an in-place edit.
// Unparseable text yields 0, which the edit operations treat as removal.
func ParseEditQuantity(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}
