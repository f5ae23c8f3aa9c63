package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshopx/microservices/services/basket/internal/models"
)

type fakeInner struct {
	carts    map[string]models.ShoppingCart
	getCalls int
}

func newFakeInner() *fakeInner {
	return &fakeInner{carts: make(map[string]models.ShoppingCart)}
}

func (f *fakeInner) GetBasket(_ context.Context, userName string) (*models.ShoppingCart, error) {
	f.getCalls++
	cart, ok := f.carts[userName]
	if !ok {
		return nil, ErrNotFound
	}
	return &cart, nil
}

func (f *fakeInner) StoreBasket(_ context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	f.carts[cart.UserName] = *cart
	return cart, nil
}

func (f *fakeInner) DeleteBasket(_ context.Context, userName string) (bool, error) {
	_, ok := f.carts[userName]
	delete(f.carts, userName)
	return ok, nil
}

type fakeCache struct {
	entries map[string][]byte
	failAll bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.failAll {
		return nil, false, errors.New("cache down")
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte) error {
	if f.failAll {
		return errors.New("cache down")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	if f.failAll {
		return errors.New("cache down")
	}
	delete(f.entries, key)
	return nil
}

func testCart() *models.ShoppingCart {
	return &models.ShoppingCart{
		UserName: "alice",
		Items:    []models.ShoppingCartItem{{ProductName: "Widget", Quantity: 1, Price: 10}},
	}
}

func TestCachedRepo_GetMissFillsCache(t *testing.T) {
	t.Parallel()

	inner := newFakeInner()
	cache := newFakeCache()
	r := &CachedRepo{Inner: inner, Cache: cache}
	ctx := context.Background()

	_, err := inner.StoreBasket(ctx, testCart())
	require.NoError(t, err)

	got, err := r.GetBasket(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Contains(t, cache.entries, "basket:alice")
}

func TestCachedRepo_GetHitSkipsInner(t *testing.T) {
	t.Parallel()

	inner := newFakeInner()
	cache := newFakeCache()
	r := &CachedRepo{Inner: inner, Cache: cache}
	ctx := context.Background()

	_, err := r.StoreBasket(ctx, testCart())
	require.NoError(t, err)

	got, err := r.GetBasket(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Zero(t, inner.getCalls, "a cache hit must not touch storage")
}

func TestCachedRepo_StoreRefreshesCacheEntry(t *testing.T) {
	t.Parallel()

	inner := newFakeInner()
	cache := newFakeCache()
	r := &CachedRepo{Inner: inner, Cache: cache}
	ctx := context.Background()

	_, err := r.StoreBasket(ctx, testCart())
	require.NoError(t, err)

	updated := testCart()
	updated.Items[0].Price = 8
	_, err = r.StoreBasket(ctx, updated)
	require.NoError(t, err)

	got, err := r.GetBasket(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.Items[0].Price)
	assert.Zero(t, inner.getCalls, "the refreshed entry must serve the read")
}

func TestCachedRepo_DeleteInvalidatesCacheEntry(t *testing.T) {
	t.Parallel()

	inner := newFakeInner()
	cache := newFakeCache()
	r := &CachedRepo{Inner: inner, Cache: cache}
	ctx := context.Background()

	_, err := r.StoreBasket(ctx, testCart())
	require.NoError(t, err)

	existed, err := r.DeleteBasket(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NotContains(t, cache.entries, "basket:alice")

	_, err = r.GetBasket(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedRepo_DeleteAbsentReturnsFalse(t *testing.T) {
	t.Parallel()

	r := &CachedRepo{Inner: newFakeInner(), Cache: newFakeCache()}

	existed, err := r.DeleteBasket(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestCachedRepo_CacheFailureFallsThroughToInner(t *testing.T) {
	t.Parallel()

	inner := newFakeInner()
	cache := newFakeCache()
	cache.failAll = true
	r := &CachedRepo{Inner: inner, Cache: cache}
	ctx := context.Background()

	_, err := r.StoreBasket(ctx, testCart())
	require.NoError(t, err)

	got, err := r.GetBasket(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
}
