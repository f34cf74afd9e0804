package store

import (
	"context"
	"sync"
)

const (
	cartKeyPrefix     = "cart:"
	wishlistKeyPrefix = "wishlist:"
)

// Manager owns one CartStore and one WishlistStore per shopper session for
// the lifetime of the process. Stores are constructed lazily on first access
// for a session, seeded from the snapshot mirror, and shared by every request
// carrying the same session ID.
type Manager struct {
	mu        sync.Mutex
	carts     map[string]*CartStore
	wishlists map[string]*WishlistStore
	snapshots Snapshots
}

func NewManager(snapshots Snapshots) *Manager {
	return &Manager{
		carts:     make(map[string]*CartStore),
		wishlists: make(map[string]*WishlistStore),
		snapshots: snapshots,
	}
}

// Cart returns the session's cart store, creating it on first access.
func (m *Manager) Cart(ctx context.Context, sessionID string) *CartStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.carts[sessionID]; ok {
		return s
	}
	s := NewCartStore(ctx, m.snapshots, cartKeyPrefix+sessionID)
	m.carts[sessionID] = s
	return s
}

// Wishlist returns the session's wishlist store, creating it on first access.
func (m *Manager) Wishlist(ctx context.Context, sessionID string) *WishlistStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.wishlists[sessionID]; ok {
		return s
	}
	s := NewWishlistStore(ctx, m.snapshots, wishlistKeyPrefix+sessionID)
	m.wishlists[sessionID] = s
	return s
}
