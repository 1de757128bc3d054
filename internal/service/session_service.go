package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrListNotFound    = errors.New("list not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// CatalogRepository interface for catalog data access
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (shopping.Catalog, error)
	FindProduct(ctx context.Context, name string) (string, error)
}

// Recorder receives shopping events for metrics
type Recorder interface {
	SessionCreated()
	SessionEnded(expired bool)
	CartAdded(quantity int)
	CartCleared()
	ListSaved()
	ListDeleted()
	ItemToggled()
}

type noopRecorder struct{}

func (noopRecorder) SessionCreated() {}
func (noopRecorder) SessionEnded(bool) {}
func (noopRecorder) CartAdded(int) {}
func (noopRecorder) CartCleared() {}
func (noopRecorder) ListSaved() {}
func (noopRecorder) ListDeleted() {}
func (noopRecorder) ItemToggled() {}

// Option customises a SessionService
type Option func(*SessionService)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) {
		s.now = now
	}
}

// WithIDGenerator replaces the generator used for session and list IDs
func WithIDGenerator(newID func() string) Option {
	return func(s *SessionService) {
		s.newID = newID
	}
}

// WithRecorder sets the metrics sink
func WithRecorder(r Recorder) Option {
	return func(s *SessionService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// SessionService owns every shopping session and drives the shopping domain
// on their behalf
type SessionService struct {
	catalog  CatalogRepository
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionService creates a new session service
func NewSessionService(catalog CatalogRepository, logger *slog.Logger, opts ...Option) *SessionService {
	s := &SessionService{
		catalog:  catalog,
		logger:   logger,
		recorder: noopRecorder{},
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// withSession runs fn on the session while holding its lock. A session that
// was ended or evicted after the lookup is reported as not found.
func (s *SessionService) withSession(id string, fn func(*Session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.removed {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.lastSeen = s.now()
	return fn(sess)
}

// CreateSession starts a new session with the default selection and an empty cart
func (s *SessionService) CreateSession(ctx context.Context) (*models.SessionView, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	now := s.now().UTC()
	sess := newSession(s.newID(), now, shopping.NewListStore(
		shopping.WithClock(s.now),
		shopping.WithIDGenerator(s.newID),
	))

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.recorder.SessionCreated()
	s.logger.Info("session created", "session_id", sess.ID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sessionView(sess, catalog), nil
}

// GetSession returns the summary of a session
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.SessionView, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var view *models.SessionView
	err = s.withSession(id, func(sess *Session) error {
		view = sessionView(sess, catalog)
		return nil
	})
	return view, err
}

// EndSession discards a session and everything in it
func (s *SessionService) EndSession(ctx context.Context, id string) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || !sess.close() {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	s.recorder.SessionEnded(false)
	s.logger.Info("session ended", "session_id", id)
	return nil
}

// SessionCount returns the number of live sessions
func (s *SessionService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// VisibleProducts returns the current selection and the products it shows
func (s *SessionService) VisibleProducts(ctx context.Context, id string) (*models.SelectionView, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var view *models.SelectionView
	err = s.withSession(id, func(sess *Session) error {
		view = selectionView(sess.selection, catalog)
		return nil
	})
	return view, err
}

// ToggleCategory applies a category tap to the session's filter
func (s *SessionService) ToggleCategory(ctx context.Context, id string, category shopping.Category) (*models.SelectionView, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var view *models.SelectionView
	err = s.withSession(id, func(sess *Session) error {
		sess.selection = shopping.ToggleCategory(sess.selection, category)
		view = selectionView(sess.selection, catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("category toggled", "session_id", id, "category", category, "selected", view.Selected)
	return view, nil
}

// Cart returns the session's cart
func (s *SessionService) Cart(ctx context.Context, id string) (*models.CartView, error) {
	var view *models.CartView
	err := s.withSession(id, func(sess *Session) error {
		view = cartView(sess.cart, "")
		if sess.cart.IsEmpty() {
			view.Message = MsgCartEmpty
		}
		return nil
	})
	return view, err
}

// AddToCart merges quantityText worth of product into the cart
func (s *SessionService) AddToCart(ctx context.Context, id, product, quantityText string) (*models.CartView, error) {
	name, err := s.catalog.FindProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, product)
	}
	quantity := shopping.ParseAddQuantity(quantityText)

	var view *models.CartView
	err = s.withSession(id, func(sess *Session) error {
		_, existed := sess.cart.Quantity(name)

		var total int
		sess.cart, total = sess.cart.Add(name, quantity)

		msg := msgAdded(name, quantity)
		if existed {
			msg = msgMerged(name, total)
		}
		view = cartView(sess.cart, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.CartAdded(quantity)
	s.logger.Info("item added to cart", "session_id", id, "product", name, "quantity", quantity)
	return view, nil
}

// UpdateCartQuantity overwrites a product's quantity. Text that is not a
// positive integer removes the product.
func (s *SessionService) UpdateCartQuantity(ctx context.Context, id, product, quantityText string) (*models.CartView, error) {
	quantity := shopping.ParseEditQuantity(quantityText)
	product, known := s.resolveProduct(ctx, product)

	var view *models.CartView
	err := s.withSession(id, func(sess *Session) error {
		_, existed := sess.cart.Quantity(product)
		if !existed && !known && quantity > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidProduct, product)
		}
		sess.cart = sess.cart.SetQuantity(product, quantity)

		var msg string
		switch {
		case quantity > 0:
			msg = msgQuantityUpdated(product)
		case existed:
			msg = msgRemoved(product)
		}
		view = cartView(sess.cart, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cart quantity updated", "session_id", id, "product", product, "quantity", quantity)
	return view, nil
}

// RemoveFromCart drops a product from the cart
func (s *SessionService) RemoveFromCart(ctx context.Context, id, product string) (*models.CartView, error) {
	product, _ = s.resolveProduct(ctx, product)

	var view *models.CartView
	err := s.withSession(id, func(sess *Session) error {
		_, existed := sess.cart.Quantity(product)
		sess.cart = sess.cart.Remove(product)

		var msg string
		if existed {
			msg = msgRemoved(product)
		}
		view = cartView(sess.cart, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item removed from cart", "session_id", id, "product", product)
	return view, nil
}

// ClearCart empties the cart
func (s *SessionService) ClearCart(ctx context.Context, id string) (*models.CartView, error) {
	var view *models.CartView
	err := s.withSession(id, func(sess *Session) error {
		sess.cart = sess.cart.Clear()
		view = cartView(sess.cart, MsgCartCleared)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.CartCleared()
	s.logger.Info("cart cleared", "session_id", id)
	return view, nil
}

// SaveList commits the cart as a new saved list and then clears the cart.
// A nil name uses DefaultListName.
func (s *SessionService) SaveList(ctx context.Context, id string, name *string) (*models.SavedListView, error) {
	listName := DefaultListName
	if name != nil {
		listName = *name
	}

	var view *models.SavedListView
	err := s.withSession(id, func(sess *Session) error {
		if sess.cart.IsEmpty() {
			return fmt.Errorf("failed to save list: %w", shopping.ErrEmptyCart)
		}
		lists, list, err := sess.lists.Commit(listName, sess.cart)
		if err != nil {
			return fmt.Errorf("failed to save list: %w", err)
		}
		sess.lists = lists
		sess.cart = sess.cart.Clear()

		view = savedListView(list)
		view.Message = msgListSaved(list.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.ListSaved()
	s.logger.Info("list saved", "session_id", id, "list_id", view.ID, "name", view.Name, "items", len(view.Items))
	return view, nil
}

// Lists returns every saved list of the session
func (s *SessionService) Lists(ctx context.Context, id string) (*models.ListsView, error) {
	var view *models.ListsView
	err := s.withSession(id, func(sess *Session) error {
		view = listsView(sess.lists, "")
		return nil
	})
	return view, err
}

// GetList returns one saved list
func (s *SessionService) GetList(ctx context.Context, id, listID string) (*models.SavedListView, error) {
	var view *models.SavedListView
	err := s.withSession(id, func(sess *Session) error {
		list, ok := sess.lists.Get(listID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrListNotFound, listID)
		}
		view = savedListView(list)
		return nil
	})
	return view, err
}

// DeleteList removes a saved list. Deleting a list that does not exist
// returns the unchanged lists.
func (s *SessionService) DeleteList(ctx context.Context, id, listID string) (*models.ListsView, error) {
	var (
		view    *models.ListsView
		deleted bool
	)
	err := s.withSession(id, func(sess *Session) error {
		list, ok := sess.lists.Get(listID)
		if !ok {
			view = listsView(sess.lists, "")
			return nil
		}
		sess.lists, deleted = sess.lists.Delete(listID)
		view = listsView(sess.lists, msgListDeleted(list.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deleted {
		s.recorder.ListDeleted()
		s.logger.Info("list deleted", "session_id", id, "list_id", listID)
	}
	return view, nil
}

// ToggleListItem flips the checked flag of an item on a saved list
func (s *SessionService) ToggleListItem(ctx context.Context, id, listID, item string) (*models.SavedListView, error) {
	item, _ = s.resolveProduct(ctx, item)

	var (
		view    *models.SavedListView
		toggled bool
	)
	err := s.withSession(id, func(sess *Session) error {
		lists, list, ok := sess.lists.ToggleItem(listID, item)
		if !ok {
			return fmt.Errorf("%w: %s", ErrListNotFound, listID)
		}
		sess.lists = lists
		view = savedListView(list)
		for _, it := range list.Items {
			if it.Name == item {
				toggled = true
				view.Message = msgItemChecked(item, it.Checked)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if toggled {
		s.recorder.ItemToggled()
	}
	return view, nil
}

// UpdateListItemQuantity edits an item's quantity on a saved list. Text that
// is not a positive integer removes the item.
func (s *SessionService) UpdateListItemQuantity(ctx context.Context, id, listID, item, quantityText string) (*models.SavedListView, error) {
	quantity := shopping.ParseEditQuantity(quantityText)
	item, _ = s.resolveProduct(ctx, item)

	var view *models.SavedListView
	err := s.withSession(id, func(sess *Session) error {
		before, ok := sess.lists.Get(listID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrListNotFound, listID)
		}
		lists, list, _ := sess.lists.SetItemQuantity(listID, item, quantity)
		sess.lists = lists
		view = savedListView(list)

		if len(before.Items) != len(list.Items) {
			view.Message = msgRemoved(item)
		} else if quantity > 0 && hasItem(list, item) {
			view.Message = msgQuantityUpdated(item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("list item quantity updated", "session_id", id, "list_id", listID, "item", item, "quantity", quantity)
	return view, nil
}

// Sweep evicts sessions idle for longer than ttl and returns how many went
func (s *SessionService) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.RLock()
	candidates := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		candidates = append(candidates, sess)
	}
	s.mu.RUnlock()

	expired := make([]string, 0)
	for _, sess := range candidates {
		if sess.expire(cutoff) {
			expired = append(expired, sess.ID)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	s.mu.Lock()
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for range expired {
		s.recorder.SessionEnded(true)
	}
	s.logger.Info("idle sessions evicted", "count", len(expired))
	return len(expired)
}

// RunSweeper schedules Sweep every interval and blocks until ctx is
// cancelled. Intervals under a second are rounded up by the scheduler.
func (s *SessionService) RunSweeper(ctx context.Context, interval, ttl time.Duration) {
	scheduler := cron.New()
	scheduler.Schedule(cron.Every(interval), cron.FuncJob(func() {
		s.Sweep(ttl)
	}))
	scheduler.Start()
	s.logger.Debug("session sweeper started", "interval", interval.String(), "ttl", ttl.String())

	<-ctx.Done()
	<-scheduler.Stop().Done()
	s.logger.Debug("session sweeper stopped")
}

// resolveProduct maps a product name to its catalog spelling. Unknown names
// come back unchanged with ok set to false.
func (s *SessionService) resolveProduct(ctx context.Context, product string) (string, bool) {
	name, err := s.catalog.FindProduct(ctx, product)
	if err != nil {
		return product, false
	}
	return name, true
}

func hasItem(list shopping.SavedList, item string) bool {
	for _, it := range list.Items {
		if it.Name == item {
			return true
		}
	}
	return false
}
