package store

import (
	"context"
	"sync"

	"mohini-backend/internal/domain"
	"mohini-backend/pkg/logger"

	"github.com/goccy/go-json"
)

// WishlistStore holds a deduplicated, insertion-ordered set of products the
// shopper has marked for later. No quantities, no aggregates.
type WishlistStore struct {
	mu        sync.Mutex
	items     []domain.Product
	snapshots Snapshots
	key       string
	subs      []func([]domain.Product)
}

// NewWishlistStore creates a wishlist store seeded from the persisted
// snapshot under key; malformed or missing data means it starts empty.
func NewWishlistStore(ctx context.Context, snapshots Snapshots, key string) *WishlistStore {
	s := &WishlistStore{
		snapshots: snapshots,
		key:       key,
	}

	data, err := snapshots.Load(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Wishlist snapshot load failed, starting empty")
		return s
	}
	if len(data) == 0 {
		return s
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Discarding malformed wishlist snapshot")
		return s
	}
	s.items = items
	return s
}

// Subscribe registers fn to be called with the new snapshot after every
// mutation.
func (s *WishlistStore) Subscribe(fn func(items []domain.Product)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add inserts the product unless an entry with the same ID already exists.
// Adding a present product is a no-op, not an error.
func (s *WishlistStore) Add(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			return
		}
	}

	s.items = append(s.items, product)
	s.persist(ctx)
}

// Remove deletes the entry if present; no-op otherwise.
func (s *WishlistStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Contains reports whether an entry with the given ID exists. Pure predicate,
// no side effects; drives the wishlist icon toggle.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current entries in insertion order.
func (s *WishlistStore) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Clear empties the wishlist unconditionally.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// persist writes the full set to the snapshot mirror and notifies
// subscribers. Must be called with s.mu held.
func (s *WishlistStore) persist(ctx context.Context) {
	snap := s.snapshot()

	data, err := json.Marshal(snap)
	if err != nil {
		logger.Error().Err(err).Str("key", s.key).Msg("Wishlist snapshot marshal failed")
	} else if err := s.snapshots.Save(ctx, s.key, data); err != nil {
		logger.Error().Err(err).Str("key", s.key).Msg("Wishlist snapshot write failed")
	}

	for _, fn := range s.subs {
		fn(snap)
	}
}

func (s *WishlistStore) snapshot() []domain.Product {
	snap := make([]domain.Product, len(s.items))
	copy(snap, s.items)
	return snap
}
