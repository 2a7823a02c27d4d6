package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

// assetVersionRepository is the PostgreSQL-backed implementation of
// [AssetVersionRepository]. Storage layout and locking semantics mirror
// [contentVersionRepository]; the two documents live in separate tables so
// story and asset mutations never contend on the same row lock.
type assetVersionRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetVersionRepository constructs an [AssetVersionRepository] backed by
// the provided database connection and logger.
func NewAssetVersionRepository(db *DB, logger *logger.Logger) AssetVersionRepository {
	logger.Debug().Msg("creating asset version repository")
	return &assetVersionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAssetVersion reads the singleton asset version document.
//
// Error handling:
//   - No row yet → [ErrVersionNotFound].
func (r *assetVersionRepository) GetAssetVersion(ctx context.Context) (models.AssetVersion, error) {
	row := r.DB.QueryRowContext(ctx, getAssetVersion, models.CurrentVersionID)
	return r.scanAssetVersion(ctx, row)
}

// GetAssetVersionForUpdate reads the version document inside tx and locks
// the row until the transaction ends.
func (r *assetVersionRepository) GetAssetVersionForUpdate(ctx context.Context, tx Tx) (models.AssetVersion, error) {
	row := tx.QueryRowContext(ctx, getAssetVersionForUpdate, models.CurrentVersionID)
	return r.scanAssetVersion(ctx, row)
}

// SaveAssetVersion upserts the version document outside a transaction.
func (r *assetVersionRepository) SaveAssetVersion(ctx context.Context, version models.AssetVersion) error {
	return r.save(ctx, r.DB.ExecContext, version)
}

// SaveAssetVersionInTx upserts the version document inside tx.
func (r *assetVersionRepository) SaveAssetVersionInTx(ctx context.Context, tx Tx, version models.AssetVersion) error {
	return r.save(ctx, tx.ExecContext, version)
}

func (r *assetVersionRepository) save(ctx context.Context, exec execFunc, version models.AssetVersion) error {
	log := logger.FromContext(ctx)

	checksumsJSON, err := json.Marshal(version.AssetChecksums)
	if err != nil {
		log.Err(err).
			Str("func", "assetVersionRepository.save").
			Msg("failed to encode asset checksums")
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	_, err = exec(ctx, upsertAssetVersion,
		models.CurrentVersionID,
		version.Version,
		checksumsJSON,
		version.TotalAssets,
		version.TotalSizeBytes,
		version.LastUpdated,
	)
	if err != nil {
		log.Err(err).
			Str("func", "assetVersionRepository.save").
			Int64("version", version.Version).
			Msg("failed to execute upsert for asset version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *assetVersionRepository) scanAssetVersion(ctx context.Context, row *sql.Row) (models.AssetVersion, error) {
	log := logger.FromContext(ctx)

	version := models.AssetVersion{ID: models.CurrentVersionID}
	var checksumsJSON []byte

	err := row.Scan(
		&version.Version,
		&checksumsJSON,
		&version.TotalAssets,
		&version.TotalSizeBytes,
		&version.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AssetVersion{}, ErrVersionNotFound
		}
		log.Err(err).
			Str("func", "assetVersionRepository.scanAssetVersion").
			Msg("failed to scan asset version row")
		return models.AssetVersion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(checksumsJSON, &version.AssetChecksums); err != nil {
		log.Err(err).
			Str("func", "assetVersionRepository.scanAssetVersion").
			Msg("failed to decode asset checksums")
		return models.AssetVersion{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	if version.AssetChecksums == nil {
		version.AssetChecksums = make(map[string]string)
	}

	return version, nil
}
