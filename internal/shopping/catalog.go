package shopping

// Catalog maps each category to its ordered product names.
// All is curated and is not the union of the other categories.
type Catalog map[Category][]string

// DefaultCatalog returns a fresh copy of the built-in product table
func DefaultCatalog() Catalog {
	return Catalog{
		All:        {"Carrot", "Apple", "Milk", "Bread", "Chicken", "Chips"},
		Vegetables: {"Carrot", "Potato", "Beetroot", "Pumpkin", "Cabbage", "Tomato"},
		Fruits:     {"Apple", "Orange", "Banana", "Grapes", "Watermelon", "Strawberry"},
		Dairy:      {"Milk", "Cheese", "Yogurt", "Butter", "Cream", "Ice Cream"},
		Bakery:     {"Bread", "Croissant", "Muffin", "Cake", "Cookies", "Bagel"},
		Meat:       {"Chicken", "Beef", "Fish", "Pork", "Turkey", "Lamb"},
		Snacks:     {"Chips", "Nuts", "Crackers", "Popcorn", "Pretzels", "Candy"},
	}
}

// Products returns a copy of the products listed under a category
func (c Catalog) Products(category Category) []string {
	products := c[category]
	out := make([]string, len(products))
	copy(out, products)
	return out
}
