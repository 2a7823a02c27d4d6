package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// assetService implements [AssetService]. URL resolution delegates to the
// configured [URLStrategy]; mutations keep the asset version document in step
// with the object store the same way storyService does for content.
type assetService struct {
	objects       store.AssetObjectStore
	assetVersions store.AssetVersionRepository
	db            *store.DB

	strategy URLStrategy
	cfg      config.Assets

	logger *logger.Logger
}

// NewAssetService constructs an [AssetService] with the URL strategy selected
// by cfg. The chosen strategy is logged once at startup so operators can tell
// which URL shape clients will receive.
func NewAssetService(storages *store.Storages, cfg config.Assets, logger *logger.Logger) (AssetService, error) {
	strategy, err := NewURLStrategy(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("strategy", strategy.Name()).Msg("asset url strategy selected")

	return &assetService{
		objects:       storages.AssetObjectStore,
		assetVersions: storages.AssetVersionRepository,
		db:            storages.DB,
		strategy:      strategy,
		cfg:           cfg,
		logger:        logger,
	}, nil
}

// GetAssetVersion returns the current asset version document, falling back
// to the zero-state document when none exists yet.
func (s *assetService) GetAssetVersion(ctx context.Context) (models.AssetVersion, error) {
	version, err := s.assetVersions.GetAssetVersion(ctx)
	if err != nil {
		if errors.Is(err, store.ErrVersionNotFound) {
			return models.NewAssetVersion(), nil
		}
		return models.AssetVersion{}, err
	}
	return version, nil
}

// SignedURL resolves a single asset path to an access URL. The path must be
// valid and the object must exist.
func (s *assetService) SignedURL(ctx context.Context, path string) (models.SignedURLEntry, error) {
	if err := store.ValidateAssetPath(path); err != nil {
		return models.SignedURLEntry{}, err
	}

	exists, err := s.objects.Exists(ctx, path)
	if err != nil {
		return models.SignedURLEntry{}, err
	}
	if !exists {
		return models.SignedURLEntry{}, store.ErrAssetNotFound
	}

	return s.strategy.Resolve(path)
}

// BatchURLs resolves up to [models.MaxBatchPaths] paths in one call. A path
// that fails to resolve lands in Failed and never aborts the batch; the
// response is a success as long as the request itself was well-formed.
func (s *assetService) BatchURLs(ctx context.Context, paths []string) (models.BatchURLsResponse, error) {
	log := logger.FromContext(ctx)

	if len(paths) == 0 {
		return models.BatchURLsResponse{}, ErrNoPathsProvided
	}
	if len(paths) > models.MaxBatchPaths {
		return models.BatchURLsResponse{}, fmt.Errorf("%w: %d > %d", ErrTooManyPaths, len(paths), models.MaxBatchPaths)
	}

	resp := models.BatchURLsResponse{
		URLs:   make([]models.SignedURLEntry, 0, len(paths)),
		Failed: make([]string, 0),
	}

	for _, path := range paths {
		entry, err := s.SignedURL(ctx, path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to resolve asset url in batch")
			resp.Failed = append(resp.Failed, path)
			continue
		}
		resp.URLs = append(resp.URLs, entry)
	}

	return resp, nil
}

// OpenAsset opens the object at path for streaming. Under the signed
// strategy the token must verify and its subject must match path exactly;
// other strategies serve the object without a token.
func (s *assetService) OpenAsset(ctx context.Context, path, token string) (io.ReadCloser, error) {
	if err := store.ValidateAssetPath(path); err != nil {
		return nil, err
	}

	if s.strategy.Name() == config.URLStrategySigned {
		subject, err := utils.ValidateAssetToken(token, s.cfg.SignKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAssetToken, err)
		}
		if subject != path {
			return nil, fmt.Errorf("%w: token is bound to a different path", ErrInvalidAssetToken)
		}
	}

	return s.objects.Open(ctx, path)
}

// PutAsset stores the object and records its checksum in the asset version
// document. Re-uploading identical content leaves the counter alone.
func (s *assetService) PutAsset(ctx context.Context, path string, r io.Reader) (models.AssetStat, error) {
	var oldSize int64
	if existing, err := s.objects.Stat(ctx, path); err == nil {
		oldSize = existing.Size
	}

	stat, err := s.objects.Put(ctx, path, r)
	if err != nil {
		return models.AssetStat{}, err
	}

	err = s.mutateAssetVersion(ctx, func(v *models.AssetVersion) bool {
		if !v.UpdateAssetChecksum(path, stat.Checksum) {
			return false
		}
		v.TotalSizeBytes += stat.Size - oldSize
		return true
	})
	if err != nil {
		return models.AssetStat{}, err
	}

	return stat, nil
}

// DeleteAsset removes the object and evicts its checksum from the asset
// version document.
func (s *assetService) DeleteAsset(ctx context.Context, path string) error {
	stat, err := s.objects.Stat(ctx, path)
	if err != nil {
		return err
	}

	if err := s.objects.Delete(ctx, path); err != nil {
		return err
	}

	return s.mutateAssetVersion(ctx, func(v *models.AssetVersion) bool {
		if !v.RemoveAssetChecksum(path) {
			return false
		}
		v.TotalSizeBytes -= stat.Size
		return true
	})
}

// mutateAssetVersion mirrors storyService.mutateContentVersion for the asset
// version document.
func (s *assetService) mutateAssetVersion(ctx context.Context, mutate func(v *models.AssetVersion) bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	seeding := false
	version, err := s.assetVersions.GetAssetVersionForUpdate(ctx, tx)
	if err != nil {
		if !errors.Is(err, store.ErrVersionNotFound) {
			return err
		}
		version = models.NewAssetVersion()
		seeding = true
	}

	if changed := mutate(&version); !changed && !seeding {
		return tx.Rollback()
	}

	if err := s.assetVersions.SaveAssetVersionInTx(ctx, tx, version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrCommitingTransaction, err)
	}

	return nil
}
