package service

import (
	"context"
	"io"

	"github.com/nightlight-app/storysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StoryService exposes the content side of the gateway: reads, the delta
// exchange, and the admin mutations that drive the version counter.
type StoryService interface {
	GetAllStories(ctx context.Context) ([]models.Story, error)
	GetStory(ctx context.Context, storyID string) (models.Story, error)
	GetStoriesByCategory(ctx context.Context, category string) ([]models.Story, error)

	GetContentVersion(ctx context.Context) (models.ContentVersion, error)
	DeltaSync(ctx context.Context, req models.DeltaSyncRequest) (models.DeltaSyncResponse, error)

	SaveStory(ctx context.Context, story *models.Story) error
	DeleteStory(ctx context.Context, storyID string) error
}

// AssetService exposes asset URL resolution and the admin mutations that
// drive the asset version counter.
type AssetService interface {
	GetAssetVersion(ctx context.Context) (models.AssetVersion, error)

	SignedURL(ctx context.Context, path string) (models.SignedURLEntry, error)
	BatchURLs(ctx context.Context, paths []string) (models.BatchURLsResponse, error)

	// OpenAsset returns a reader over the asset at path. Under the signed
	// strategy the token must be valid and bound to the same path.
	OpenAsset(ctx context.Context, path, token string) (io.ReadCloser, error)

	PutAsset(ctx context.Context, path string, r io.Reader) (models.AssetStat, error)
	DeleteAsset(ctx context.Context, path string) error
}
