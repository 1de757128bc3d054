package models

// Category is a catalog category with its products in display order
type Category struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// SelectionView is the category filter state and the products it reveals
type SelectionView struct {
	Selected []string `json:"selected"`
	Products []string `json:"products"`
}
