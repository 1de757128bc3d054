package shopping

import "strings"

// Category is a fixed product grouping used to filter the catalog
type Category string

const (
	All        Category = "All"
	Vegetables Category = "Vegetables"
	Fruits     Category = "Fruits"
	Dairy      Category = "Dairy"
	Bakery     Category = "Bakery"
	Meat       Category = "Meat"
	Snacks     Category = "Snacks"
)

var categories = []Category{All, Vegetables, Fruits, Dairy, Bakery, Meat, Snacks}

// Categories returns every category in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a category name case-insensitively
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}
