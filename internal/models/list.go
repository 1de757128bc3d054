package models

import (
	"time"

	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

// SaveListRequest commits the cart as a named list. A missing name falls
// back to the default; a blank one is rejected.
type SaveListRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

// SavedListView is a saved list with its derived counters
type SavedListView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Items        []shopping.ListItem `json:"items"`
	ItemCount    int                 `json:"itemCount"`
	CheckedCount int                 `json:"checkedCount"`
	Progress     int                 `json:"progress"`
	CreatedAt    time.Time           `json:"createdAt"`
	Message      string              `json:"message,omitempty"`
}

// ListsView is every saved list of a session
type ListsView struct {
	Lists   []SavedListView `json:"lists"`
	Count   int             `json:"count"`
	Empty   bool            `json:"empty"`
	Message string          `json:"message,omitempty"`
}
