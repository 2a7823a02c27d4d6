package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

type assetCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetCacheRepository constructs the SQLite-backed [AssetCacheRepository]
// used by the sync client to track downloaded asset payloads.
func NewAssetCacheRepository(db *DB, logger *logger.Logger) AssetCacheRepository {
	return &assetCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *assetCacheRepository) GetCachedAsset(ctx context.Context, path string) (models.CachedAsset, error) {
	log := logger.FromContext(ctx)

	var asset models.CachedAsset
	row := r.DB.QueryRowContext(ctx, getCachedAsset, path)

	err := row.Scan(
		&asset.Path,
		&asset.FilePath,
		&asset.Checksum,
		&asset.Size,
		&asset.CachedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CachedAsset{}, ErrCachedAssetNotFound
		}
		log.Err(err).
			Str("func", "assetCacheRepository.GetCachedAsset").
			Str("path", path).
			Msg("failed to scan cached asset row")
		return models.CachedAsset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

func (r *assetCacheRepository) PutCachedAsset(ctx context.Context, asset models.CachedAsset) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, putCachedAsset,
		asset.Path,
		asset.FilePath,
		asset.Checksum,
		asset.Size,
		asset.CachedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.PutCachedAsset").
			Str("path", asset.Path).
			Msg("failed to execute upsert for cached asset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *assetCacheRepository) DeleteCachedAsset(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCachedAsset, path); err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.DeleteCachedAsset").
			Str("path", path).
			Msg("failed to execute delete for cached asset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *assetCacheRepository) GetAllCachedAssets(ctx context.Context) ([]models.CachedAsset, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCachedAssets)
	if err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.GetAllCachedAssets").
			Msg("failed to execute query for getting all cached assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.CachedAsset, 0, 50)

	for rows.Next() {
		var asset models.CachedAsset

		scanErr := rows.Scan(
			&asset.Path,
			&asset.FilePath,
			&asset.Checksum,
			&asset.Size,
			&asset.CachedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "assetCacheRepository.GetAllCachedAssets").
				Msg("failed to scan cached asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		assets = append(assets, asset)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "assetCacheRepository.GetAllCachedAssets").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return assets, nil
}

func (r *assetCacheRepository) TotalCachedSize(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.DB.QueryRowContext(ctx, totalCachedSize).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "assetCacheRepository.TotalCachedSize").
			Msg("failed to read total cached size")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}
