package store

import (
	"context"
	"fmt"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
)

// Storages groups all gateway-side storage backends into a single value that
// can be passed to the service layer.
type Storages struct {
	StoryRepository          StoryRepository
	ContentVersionRepository ContentVersionRepository
	AssetVersionRepository   AssetVersionRepository
	AssetObjectStore         AssetObjectStore

	// DB is exposed so the service layer can open transactions spanning
	// multiple repositories (story upsert + version bump).
	DB *DB
}

// NewStorages initialises the gateway storage layer: it connects to
// PostgreSQL, runs pending schema migrations, opens the filesystem asset
// store and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	assetStore, err := NewFileAssetStore(cfg.Assets.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("asset store error: %w", err)
	}

	return &Storages{
		StoryRepository:          NewStoryRepository(db, log),
		ContentVersionRepository: NewContentVersionRepository(db, log),
		AssetVersionRepository:   NewAssetVersionRepository(db, log),
		AssetObjectStore:         assetStore,
		DB:                       db,
	}, nil
}
