package store

import (
	"context"

	"github.com/nightlight-app/storysync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AssetCacheRepository is the client-side index of downloaded asset payloads.
// Rows describe which store paths are cached, where the payload file lives
// and what its checksum is; the payload bytes themselves live on disk under
// the cache directory.
type AssetCacheRepository interface {
	GetCachedAsset(ctx context.Context, path string) (models.CachedAsset, error)
	PutCachedAsset(ctx context.Context, asset models.CachedAsset) error
	DeleteCachedAsset(ctx context.Context, path string) error
	GetAllCachedAssets(ctx context.Context) ([]models.CachedAsset, error)
	TotalCachedSize(ctx context.Context) (int64, error)
}

// StoryCacheRepository is the client-side store of synced stories. A story is
// cached together with the server checksum it was synced under, so the next
// delta request can declare the exact local state.
type StoryCacheRepository interface {
	UpsertStory(ctx context.Context, story models.Story, checksum string) error
	GetStory(ctx context.Context, storyID string) (models.Story, error)
	GetAllStories(ctx context.Context) ([]models.Story, error)
	DeleteStory(ctx context.Context, storyID string) error
	GetChecksums(ctx context.Context) (map[string]string, error)
}
