package shopping

// Selection is the ordered set of active categories. Order is the order in
// which categories were selected and drives the order of visible products.
type Selection []Category

// DefaultSelection is the selection a new session starts with
func DefaultSelection() Selection {
	return Selection{All}
}

// Contains reports whether the category is selected
func (s Selection) Contains(category Category) bool {
	for _, c := range s {
		if c == category {
			return true
		}
	}
	return false
}

// ToggleCategory returns the selection after a tap on category.
//
// Tapping All always yields {All}. Tapping any other category drops All and
// flips membership of the tapped category. A selection that would end up
// empty falls back to {All}. The input is never modified.
func ToggleCategory(selected Selection, category Category) Selection {
	if category == All {
		return Selection{All}
	}

	next := make(Selection, 0, len(selected)+1)
	present := false
	for _, c := range selected {
		switch c {
		case All:
			continue
		case category:
			present = true
			continue
		}
		next = append(next, c)
	}
	if !present {
		next = append(next, category)
	}

	if len(next) == 0 {
		return Selection{All}
	}
	return next
}

// VisibleProducts concatenates the product lists of the selected categories
// and removes duplicates, keeping the first occurrence.
func VisibleProducts(selected Selection, catalog Catalog) []string {
	seen := make(map[string]struct{})
	products := make([]string, 0)
	for _, category := range selected {
		for _, p := range catalog[category] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			products = append(products, p)
		}
	}
	return products
}
