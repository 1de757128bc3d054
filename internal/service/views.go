package service

import (
	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

func categoryNames(selection shopping.Selection) []string {
	names := make([]string, len(selection))
	for i, c := range selection {
		names[i] = c.String()
	}
	return names
}

func selectionView(selection shopping.Selection, catalog shopping.Catalog) *models.SelectionView {
	return &models.SelectionView{
		Selected: categoryNames(selection),
		Products: shopping.VisibleProducts(selection, catalog),
	}
}

func sessionView(sess *Session, catalog shopping.Catalog) *models.SessionView {
	return &models.SessionView{
		ID:              sess.ID,
		Selected:        categoryNames(sess.selection),
		VisibleProducts: shopping.VisibleProducts(sess.selection, catalog),
		CartBadge:       sess.cart.LineCount(),
		CartTotalItems:  sess.cart.TotalItems(),
		SavedLists:      sess.lists.Len(),
		CreatedAt:       sess.CreatedAt,
	}
}

func cartView(cart shopping.Cart, message string) *models.CartView {
	return &models.CartView{
		Lines:      cart.Lines(),
		TotalItems: cart.TotalItems(),
		LineCount:  cart.LineCount(),
		Summary:    cartSummary(cart.TotalItems(), cart.LineCount()),
		Message:    message,
	}
}

func savedListView(list shopping.SavedList) *models.SavedListView {
	items := make([]shopping.ListItem, len(list.Items))
	copy(items, list.Items)
	return &models.SavedListView{
		ID:           list.ID,
		Name:         list.Name,
		Items:        items,
		ItemCount:    list.ItemCount(),
		CheckedCount: list.CheckedCount(),
		Progress:     list.Progress(),
		CreatedAt:    list.CreatedAt,
	}
}

func listsView(store shopping.ListStore, message string) *models.ListsView {
	lists := store.Lists()
	views := make([]models.SavedListView, len(lists))
	for i, l := range lists {
		views[i] = *savedListView(l)
	}

	if message == "" && store.IsEmpty() {
		message = MsgNoSavedLists
	}
	return &models.ListsView{
		Lists:   views,
		Count:   len(views),
		Empty:   store.IsEmpty(),
		Message: message,
	}
}
