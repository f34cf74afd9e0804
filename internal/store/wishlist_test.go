package store

import (
	"context"
	"testing"

	"mohini-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlistStore(ctx, NewMemorySnapshots(), "wishlist:test")

	p := testProduct("p1", 500)
	wl.Add(ctx, p)
	wl.Add(ctx, p)
	wl.Add(ctx, p)

	assert.Len(t, wl.Items(), 1)
}

func TestWishlistContains(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlistStore(ctx, NewMemorySnapshots(), "wishlist:test")

	assert.False(t, wl.Contains("p1"))

	wl.Add(ctx, testProduct("p1", 100))
	assert.True(t, wl.Contains("p1"))
	assert.False(t, wl.Contains("p2"))

	wl.Remove(ctx, "p1")
	assert.False(t, wl.Contains("p1"))
}

func TestWishlistRemoveAbsentNoop(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlistStore(ctx, NewMemorySnapshots(), "wishlist:test")

	wl.Add(ctx, testProduct("p1", 100))
	wl.Remove(ctx, "nope")

	assert.Len(t, wl.Items(), 1)
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	snaps := NewMemorySnapshots()

	wl := NewWishlistStore(ctx, snaps, "wishlist:s1")
	wl.Add(ctx, testProduct("c", 300))
	wl.Add(ctx, testProduct("a", 100))
	wl.Add(ctx, testProduct("b", 200))

	reloaded := NewWishlistStore(ctx, snaps, "wishlist:s1")
	items := reloaded.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "b", items[2].ID)
}

func TestWishlistMalformedSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	snaps := NewMemorySnapshots()
	require.NoError(t, snaps.Save(ctx, "wishlist:bad", []byte("[[[")))

	wl := NewWishlistStore(ctx, snaps, "wishlist:bad")
	assert.Empty(t, wl.Items())
}

func TestWishlistClear(t *testing.T) {
	ctx := context.Background()
	snaps := NewMemorySnapshots()
	wl := NewWishlistStore(ctx, snaps, "wishlist:test")

	wl.Add(ctx, testProduct("p1", 100))
	wl.Add(ctx, testProduct("p2", 200))
	wl.Clear(ctx)

	assert.Empty(t, wl.Items())

	reloaded := NewWishlistStore(ctx, snaps, "wishlist:test")
	assert.Empty(t, reloaded.Items())
}

func TestWishlistSubscribe(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlistStore(ctx, NewMemorySnapshots(), "wishlist:test")

	var calls [][]domain.Product
	wl.Subscribe(func(items []domain.Product) {
		calls = append(calls, items)
	})

	wl.Add(ctx, testProduct("p1", 100))
	wl.Add(ctx, testProduct("p1", 100)) // duplicate, no mutation
	wl.Remove(ctx, "p1")

	require.Len(t, calls, 2)
	assert.Len(t, calls[0], 1)
	assert.Empty(t, calls[1])
}

func TestManagerScopesStoresBySession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemorySnapshots())

	cartA := m.Cart(ctx, "sess-a")
	cartB := m.Cart(ctx, "sess-b")

	cartA.Add(ctx, testProduct("p1", 100))

	assert.Equal(t, 1, cartA.ItemCount())
	assert.Equal(t, 0, cartB.ItemCount())

	// Same session gets the same store back
	assert.Same(t, cartA, m.Cart(ctx, "sess-a"))

	wlA := m.Wishlist(ctx, "sess-a")
	wlA.Add(ctx, testProduct("p2", 200))
	assert.False(t, m.Wishlist(ctx, "sess-b").Contains("p2"))
	assert.Same(t, wlA, m.Wishlist(ctx, "sess-a"))
}
