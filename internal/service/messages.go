package service

import "fmt"

// Status texts shown to the shopper after each operation

const (
	MsgCartEmpty     = "Your shopping list is empty"
	MsgCartCleared   = "Shopping list cleared"
	MsgNothingToSave = "Nothing to save"
	MsgBlankListName = "List name cannot be empty."
	MsgNoSavedLists  = "No saved lists"

	// DefaultListName is used when a save request carries no name at all
	DefaultListName = "My Shopping List"
)

func msgAdded(product string, quantity int) string {
	return fmt.Sprintf("Added %d x %s to shopping list", quantity, product)
}

func msgMerged(product string, quantity int) string {
	return fmt.Sprintf("Updated %s quantity to %d", product, quantity)
}

func msgQuantityUpdated(product string) string {
	return fmt.Sprintf("%s quantity updated.", product)
}

func msgRemoved(product string) string {
	return fmt.Sprintf("%s removed.", product)
}

func msgListSaved(name string) string {
	return fmt.Sprintf("List '%s' saved!", name)
}

func msgListDeleted(name string) string {
	return fmt.Sprintf("List '%s' deleted.", name)
}

func msgItemChecked(item string, checked bool) string {
	if checked {
		return fmt.Sprintf("%s checked.", item)
	}
	return fmt.Sprintf("%s unchecked.", item)
}

func cartSummary(totalItems, lineCount int) string {
	return fmt.Sprintf("Total: %d items (%d products)", totalItems, lineCount)
}
