package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSnapshotStore(client, time.Hour), mr
}

func TestSnapshotStoreSaveAndLoad(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart:s1", []byte(`[{"quantity":2}]`)))

	data, err := store.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"quantity":2}]`), data)
}

func TestSnapshotStoreLoadAbsentKey(t *testing.T) {
	store, _ := setupTestStore(t)

	data, err := store.Load(context.Background(), "cart:missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSnapshotStoreSaveOverwrites(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart:s1", []byte(`["old"]`)))
	require.NoError(t, store.Save(ctx, "cart:s1", []byte(`["new"]`)))

	data, err := store.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), data)
}

func TestSnapshotStoreSaveSetsTTL(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Save(context.Background(), "cart:s1", []byte("[]")))
	assert.Equal(t, time.Hour, mr.TTL("cart:s1"))
}

func TestSnapshotStoreDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "wishlist:s1", []byte("[]")))
	require.NoError(t, store.Delete(ctx, "wishlist:s1"))

	data, err := store.Load(ctx, "wishlist:s1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSnapshotStoreLoadAfterExpiry(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart:s1", []byte("[]")))
	mr.FastForward(2 * time.Hour)

	data, err := store.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Nil(t, data)
}
