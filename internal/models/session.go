package models

import "time"

// SessionView summarises one shopping session
type SessionView struct {
	ID              string    `json:"id"`
	Selected        []string  `json:"selected"`
	VisibleProducts []string  `json:"visibleProducts"`
	CartBadge       int       `json:"cartBadge"`
	CartTotalItems  int       `json:"cartTotalItems"`
	SavedLists      int       `json:"savedLists"`
	CreatedAt       time.Time `json:"createdAt"`
}
