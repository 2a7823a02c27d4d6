package store

import (
	"context"
	"fmt"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the sync client.
type ClientStorages struct {
	// AssetCacheRepository indexes downloaded asset payloads.
	AssetCacheRepository AssetCacheRepository

	// StoryCacheRepository holds synced stories and their checksums.
	StoryCacheRepository StoryCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the cache tables when they are missing.
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		AssetCacheRepository: NewAssetCacheRepository(db, logger),
		StoryCacheRepository: NewStoryCacheRepository(db, logger),
	}, nil
}
