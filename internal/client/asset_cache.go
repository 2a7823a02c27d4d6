package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

type assetCache struct {
	cacheDir string
	index    store.AssetCacheRepository

	logger *logger.Logger
}

// NewAssetCache builds an [AssetCache] that keeps payload files under
// cfg.CacheDir/assets and index rows in the given repository.
func NewAssetCache(cfg config.ClientStorage, index store.AssetCacheRepository, logger *logger.Logger) AssetCache {
	return &assetCache{
		cacheDir: filepath.Join(cfg.CacheDir, "assets"),
		index:    index,
		logger:   logger,
	}
}

// Has implements [AssetCache]. A row whose payload file is gone or has a
// different size than recorded is a miss; the next sync re-downloads it.
func (c *assetCache) Has(ctx context.Context, path string) bool {
	cached, err := c.index.GetCachedAsset(ctx, path)
	if err != nil {
		if !errors.Is(err, store.ErrCachedAssetNotFound) {
			c.logger.Warn().Err(err).Str("path", path).Msg("asset index read failed, treating as miss")
		}
		return false
	}
	if cached.Checksum == "" || cached.FilePath == "" {
		return false
	}

	info, err := os.Stat(cached.FilePath)
	if err != nil || info.Size() != cached.Size {
		return false
	}

	return true
}

// Store implements [AssetCache].
func (c *assetCache) Store(ctx context.Context, path string, data []byte, checksum string) error {
	computed := utils.DataChecksum(data)
	if checksum != "" && checksum != computed {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, path)
	}

	filePath := filepath.Join(c.cacheDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("create asset cache directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("write cached asset %s: %w", path, err)
	}

	err := c.index.PutCachedAsset(ctx, models.CachedAsset{
		Path:     path,
		FilePath: filePath,
		Checksum: computed,
		Size:     int64(len(data)),
		CachedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("index cached asset %s: %w", path, err)
	}

	return nil
}

// PathsNotCached implements [AssetCache].
func (c *assetCache) PathsNotCached(ctx context.Context, paths []string) []string {
	uncached := make([]string, 0, len(paths))
	for _, path := range paths {
		if !c.Has(ctx, path) {
			uncached = append(uncached, path)
		}
	}
	return uncached
}

// Remove implements [AssetCache]. The payload file may already be gone; only
// index errors are reported.
func (c *assetCache) Remove(ctx context.Context, path string) error {
	cached, err := c.index.GetCachedAsset(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrCachedAssetNotFound) {
			return nil
		}
		return fmt.Errorf("lookup cached asset %s: %w", path, err)
	}

	if cached.FilePath != "" {
		if err = os.Remove(cached.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn().Err(err).Str("path", path).Msg("cannot remove cached asset file")
		}
	}

	return c.index.DeleteCachedAsset(ctx, path)
}

// Clear implements [AssetCache].
func (c *assetCache) Clear(ctx context.Context) error {
	cached, err := c.index.GetAllCachedAssets(ctx)
	if err != nil {
		return fmt.Errorf("list cached assets: %w", err)
	}

	for _, asset := range cached {
		if err = c.Remove(ctx, asset.Path); err != nil {
			return err
		}
	}

	if err = os.RemoveAll(c.cacheDir); err != nil {
		return fmt.Errorf("remove asset cache directory: %w", err)
	}

	return nil
}
