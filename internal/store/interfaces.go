package store

import (
	"context"
	"io"

	"github.com/nightlight-app/storysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StoryRepository is the server-side persistence interface for stories.
type StoryRepository interface {
	GetAllStories(ctx context.Context) ([]models.Story, error)
	GetStoriesByIDs(ctx context.Context, storyIDs []string) ([]models.Story, error)
	GetStoriesByCategory(ctx context.Context, category string) ([]models.Story, error)
	GetStory(ctx context.Context, storyID string) (models.Story, error)
	SaveStory(ctx context.Context, story *models.Story) error
	DeleteStory(ctx context.Context, storyID string) error
}

// ContentVersionRepository persists the singleton content version document.
//
// GetContentVersionForUpdate must be called inside the given transaction and
// locks the row until the transaction ends, so that concurrent content
// mutations serialize on the version document instead of racing the counter.
type ContentVersionRepository interface {
	GetContentVersion(ctx context.Context) (models.ContentVersion, error)
	SaveContentVersion(ctx context.Context, version models.ContentVersion) error
	GetContentVersionForUpdate(ctx context.Context, tx Tx) (models.ContentVersion, error)
	SaveContentVersionInTx(ctx context.Context, tx Tx, version models.ContentVersion) error
}

// AssetVersionRepository persists the singleton asset version document.
// Locking semantics mirror [ContentVersionRepository].
type AssetVersionRepository interface {
	GetAssetVersion(ctx context.Context) (models.AssetVersion, error)
	SaveAssetVersion(ctx context.Context, version models.AssetVersion) error
	GetAssetVersionForUpdate(ctx context.Context, tx Tx) (models.AssetVersion, error)
	SaveAssetVersionInTx(ctx context.Context, tx Tx, version models.AssetVersion) error
}

// AssetObjectStore abstracts the object storage that holds asset binaries.
// Paths are store-relative (e.g. "images/moon-bear/page-1.png") and are
// validated against the allowed prefix list before any filesystem access.
type AssetObjectStore interface {
	Exists(ctx context.Context, path string) (bool, error)
	Stat(ctx context.Context, path string) (models.AssetStat, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Put(ctx context.Context, path string, r io.Reader) (models.AssetStat, error)
	Delete(ctx context.Context, path string) error
}
