package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListItem is one entry of a saved list
type ListItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// SavedList is a named snapshot of a cart with per-item completion tracking.
// Names may collide, ID does not.
type SavedList struct {
	ID        string
	Name      string
	Items     []ListItem
	CreatedAt time.Time
}

func (l SavedList) index(name string) int {
	for i, it := range l.Items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

func (l SavedList) cloneItems() []ListItem {
	items := make([]ListItem, len(l.Items))
	copy(items, l.Items)
	return items
}

// ItemCount is the sum of item quantities
func (l SavedList) ItemCount() int {
	total := 0
	for _, it := range l.Items {
		total += it.Quantity
	}
	return total
}

// CheckedCount is the number of checked items, ignoring quantities
func (l SavedList) CheckedCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// Progress is the truncated percentage of checked items. It is counted by
// item, not by quantity, and is 0 for a list without items.
func (l SavedList) Progress() int {
	if len(l.Items) == 0 {
		return 0
	}
	return l.CheckedCount() * 100 / len(l.Items)
}

// ToggleItemChecked flips the checked flag of the named item. Unknown items
// leave the list unchanged.
func (l SavedList) ToggleItemChecked(name string) SavedList {
	i := l.index(name)
	if i < 0 {
		return l
	}
	items := l.cloneItems()
	items[i].Checked = !items[i].Checked
	l.Items = items
	return l
}

// SetItemQuantity overwrites an item's quantity, or removes the item when the
// quantity is zero or negative. Unknown items leave the list unchanged.
func (l SavedList) SetItemQuantity(name string, quantity int) SavedList {
	i := l.index(name)
	if i < 0 {
		return l
	}
	if quantity <= 0 {
		items := make([]ListItem, 0, len(l.Items)-1)
		items = append(items, l.Items[:i]...)
		items = append(items, l.Items[i+1:]...)
		l.Items = items
		return l
	}
	items := l.cloneItems()
	items[i].Quantity = quantity
	l.Items = items
	return l
}

// StoreOption customises a ListStore
type StoreOption func(*ListStore)

// WithClock sets the time source used to stamp committed lists
func WithClock(now func() time.Time) StoreOption {
	return func(s *ListStore) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to identify committed lists
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *ListStore) {
		s.newID = newID
	}
}

// ListStore is the ordered collection of saved lists of a session.
// Like Cart it is a value; operations return the updated store.
type ListStore struct {
	lists []SavedList
	now   func() time.Time
	newID func() string
}

// NewListStore creates an empty store
func NewListStore(opts ...StoreOption) ListStore {
	s := ListStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s ListStore) with(lists []SavedList) ListStore {
	s.lists = lists
	return s
}

func (s ListStore) index(id string) int {
	for i, l := range s.lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Commit materialises the cart as a new list of unchecked items and appends
// it. The cart itself is not cleared. A blank name or an empty cart leaves
// the store unchanged and returns an error.
func (s ListStore) Commit(name string, cart Cart) (ListStore, SavedList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, SavedList{}, ErrBlankListName
	}
	if cart.IsEmpty() {
		return s, SavedList{}, ErrEmptyCart
	}

	lines := cart.Lines()
	items := make([]ListItem, len(lines))
	for i, line := range lines {
		items[i] = ListItem{Name: line.Product, Quantity: line.Quantity}
	}

	now, newID := s.now, s.newID
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}

	list := SavedList{
		ID:        newID(),
		Name:      name,
		Items:     items,
		CreatedAt: now().UTC(),
	}

	lists := make([]SavedList, len(s.lists), len(s.lists)+1)
	copy(lists, s.lists)
	lists = append(lists, list)
	return s.with(lists), list, nil
}

// Get returns the list with the given ID
func (s ListStore) Get(id string) (SavedList, bool) {
	if i := s.index(id); i >= 0 {
		return s.lists[i], true
	}
	return SavedList{}, false
}

// Lists returns the saved lists in the order they were committed
func (s ListStore) Lists() []SavedList {
	out := make([]SavedList, len(s.lists))
	copy(out, s.lists)
	return out
}

func (s ListStore) Len() int {
	return len(s.lists)
}

func (s ListStore) IsEmpty() bool {
	return len(s.lists) == 0
}

// Delete removes the list with the given ID. The boolean is false when no
// such list exists, in which case the store is returned unchanged.
func (s ListStore) Delete(id string) (ListStore, bool) {
	i := s.index(id)
	if i < 0 {
		return s, false
	}
	lists := make([]SavedList, 0, len(s.lists)-1)
	lists = append(lists, s.lists[:i]...)
	lists = append(lists, s.lists[i+1:]...)
	return s.with(lists), true
}

func (s ListStore) update(id string, fn func(SavedList) SavedList) (ListStore, SavedList, bool) {
	i := s.index(id)
	if i < 0 {
		return s, SavedList{}, false
	}
	lists := s.Lists()
	lists[i] = fn(lists[i])
	return s.with(lists), lists[i], true
}

// ToggleItem flips an item's checked flag inside the identified list
func (s ListStore) ToggleItem(id, item string) (ListStore, SavedList, bool) {
	return s.update(id, func(l SavedList) SavedList {
		return l.ToggleItemChecked(item)
	})
}

// SetItemQuantity edits an item's quantity inside the identified list
func (s ListStore) SetItemQuantity(id, item string, quantity int) (ListStore, SavedList, bool) {
	return s.update(id, func(l SavedList) SavedList {
		return l.SetItemQuantity(item, quantity)
	})
}
