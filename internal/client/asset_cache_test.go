package client

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// memAssetIndex is an in-memory store.AssetCacheRepository for cache tests.
type memAssetIndex struct {
	mu   sync.Mutex
	rows map[string]models.CachedAsset
}

func newMemAssetIndex() *memAssetIndex {
	return &memAssetIndex{rows: make(map[string]models.CachedAsset)}
}

func (m *memAssetIndex) GetCachedAsset(_ context.Context, path string) (models.CachedAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[path]
	if !ok {
		return models.CachedAsset{}, store.ErrCachedAssetNotFound
	}
	return row, nil
}

func (m *memAssetIndex) PutCachedAsset(_ context.Context, asset models.CachedAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[asset.Path] = asset
	return nil
}

func (m *memAssetIndex) DeleteCachedAsset(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, path)
	return nil
}

func (m *memAssetIndex) GetAllCachedAssets(_ context.Context) ([]models.CachedAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.CachedAsset, 0, len(m.rows))
	for _, row := range m.rows {
		all = append(all, row)
	}
	return all, nil
}

func (m *memAssetIndex) TotalCachedSize(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, row := range m.rows {
		total += row.Size
	}
	return total, nil
}

func newTestAssetCache(t *testing.T) (AssetCache, *memAssetIndex) {
	t.Helper()
	index := newMemAssetIndex()
	cfg := config.ClientStorage{CacheDir: t.TempDir()}
	return NewAssetCache(cfg, index, logger.Nop()), index
}

func TestAssetCache_StoreThenHas(t *testing.T) {
	cache, index := newTestAssetCache(t)
	ctx := context.Background()
	data := []byte("png bytes")

	require.NoError(t, cache.Store(ctx, "images/moon-bear/page-1.png", data, ""))

	assert.True(t, cache.Has(ctx, "images/moon-bear/page-1.png"))
	assert.False(t, cache.Has(ctx, "images/moon-bear/page-2.png"))

	row, err := index.GetCachedAsset(ctx, "images/moon-bear/page-1.png")
	require.NoError(t, err)
	assert.Equal(t, utils.DataChecksum(data), row.Checksum)
	assert.Equal(t, int64(len(data)), row.Size)
}

func TestAssetCache_Store_ChecksumMismatch(t *testing.T) {
	cache, _ := newTestAssetCache(t)
	ctx := context.Background()

	err := cache.Store(ctx, "images/moon-bear/page-1.png", []byte("actual"), utils.DataChecksum([]byte("expected")))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	assert.False(t, cache.Has(ctx, "images/moon-bear/page-1.png"))
}

func TestAssetCache_Store_MatchingChecksumAccepted(t *testing.T) {
	cache, _ := newTestAssetCache(t)
	ctx := context.Background()
	data := []byte("mp3 bytes")

	require.NoError(t, cache.Store(ctx, "audio/moon-bear/narration.mp3", data, utils.DataChecksum(data)))
	assert.True(t, cache.Has(ctx, "audio/moon-bear/narration.mp3"))
}

func TestAssetCache_Has_MissingPayloadFileIsMiss(t *testing.T) {
	cache, index := newTestAssetCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "images/moon-bear/page-1.png", []byte("data"), ""))
	row, err := index.GetCachedAsset(ctx, "images/moon-bear/page-1.png")
	require.NoError(t, err)
	require.NoError(t, os.Remove(row.FilePath))

	assert.False(t, cache.Has(ctx, "images/moon-bear/page-1.png"), "index row without its payload file is a miss")
}

func TestAssetCache_Has_CorruptIndexRowIsMiss(t *testing.T) {
	cache, index := newTestAssetCache(t)
	ctx := context.Background()

	require.NoError(t, index.PutCachedAsset(ctx, models.CachedAsset{Path: "images/moon-bear/page-1.png"}))

	assert.False(t, cache.Has(ctx, "images/moon-bear/page-1.png"))
}

func TestAssetCache_PathsNotCached_PreservesOrder(t *testing.T) {
	cache, _ := newTestAssetCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "images/a/1.png", []byte("a1"), ""))
	require.NoError(t, cache.Store(ctx, "images/c/1.png", []byte("c1"), ""))

	got := cache.PathsNotCached(ctx, []string{
		"images/a/1.png",
		"images/b/1.png",
		"images/c/1.png",
		"audio/d/1.mp3",
	})

	assert.Equal(t, []string{"images/b/1.png", "audio/d/1.mp3"}, got)
}

func TestAssetCache_Remove(t *testing.T) {
	cache, _ := newTestAssetCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "images/moon-bear/page-1.png", []byte("data"), ""))
	require.NoError(t, cache.Remove(ctx, "images/moon-bear/page-1.png"))

	assert.False(t, cache.Has(ctx, "images/moon-bear/page-1.png"))
	assert.NoError(t, cache.Remove(ctx, "images/moon-bear/page-1.png"), "removing an absent asset is a no-op")
}

func TestAssetCache_Clear(t *testing.T) {
	cache, index := newTestAssetCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "images/a/1.png", []byte("a"), ""))
	require.NoError(t, cache.Store(ctx, "audio/a/1.mp3", []byte("b"), ""))

	require.NoError(t, cache.Clear(ctx))

	all, err := index.GetAllCachedAssets(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.False(t, cache.Has(ctx, "images/a/1.png"))
}
