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

// contentVersionRepository is the PostgreSQL-backed implementation of
// [ContentVersionRepository]. The version document is a single row keyed by
// [models.CurrentVersionID] with the checksum map stored as JSONB.
//
// Mutations go through the ForUpdate/InTx pair: the caller opens a
// transaction, locks the row, applies the domain mutation to the decoded
// document, and writes it back. SELECT FOR UPDATE serialises concurrent
// content changes so the counter never skips or repeats a value.
type contentVersionRepository struct {
	*DB
	logger *logger.Logger
}

// NewContentVersionRepository constructs a [ContentVersionRepository] backed
// by the provided database connection and logger.
func NewContentVersionRepository(db *DB, logger *logger.Logger) ContentVersionRepository {
	logger.Debug().Msg("creating content version repository")
	return &contentVersionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetContentVersion reads the singleton content version document.
//
// Error handling:
//   - No row yet → [ErrVersionNotFound].
func (r *contentVersionRepository) GetContentVersion(ctx context.Context) (models.ContentVersion, error) {
	row := r.DB.QueryRowContext(ctx, getContentVersion, models.CurrentVersionID)
	return r.scanContentVersion(ctx, row)
}

// GetContentVersionForUpdate reads the version document inside tx and locks
// the row until the transaction ends.
func (r *contentVersionRepository) GetContentVersionForUpdate(ctx context.Context, tx Tx) (models.ContentVersion, error) {
	row := tx.QueryRowContext(ctx, getContentVersionForUpdate, models.CurrentVersionID)
	return r.scanContentVersion(ctx, row)
}

// SaveContentVersion upserts the version document outside a transaction.
// Intended for seeding; concurrent mutation paths use SaveContentVersionInTx.
func (r *contentVersionRepository) SaveContentVersion(ctx context.Context, version models.ContentVersion) error {
	return r.save(ctx, r.DB.ExecContext, version)
}

// SaveContentVersionInTx upserts the version document inside tx.
func (r *contentVersionRepository) SaveContentVersionInTx(ctx context.Context, tx Tx, version models.ContentVersion) error {
	return r.save(ctx, tx.ExecContext, version)
}

type execFunc func(ctx context.Context, query string, args ...any) (sql.Result, error)

func (r *contentVersionRepository) save(ctx context.Context, exec execFunc, version models.ContentVersion) error {
	log := logger.FromContext(ctx)

	checksumsJSON, err := json.Marshal(version.StoryChecksums)
	if err != nil {
		log.Err(err).
			Str("func", "contentVersionRepository.save").
			Msg("failed to encode story checksums")
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	_, err = exec(ctx, upsertContentVersion,
		models.CurrentVersionID,
		version.Version,
		checksumsJSON,
		version.TotalStories,
		version.LastUpdated,
	)
	if err != nil {
		log.Err(err).
			Str("func", "contentVersionRepository.save").
			Int64("version", version.Version).
			Msg("failed to execute upsert for content version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *contentVersionRepository) scanContentVersion(ctx context.Context, row *sql.Row) (models.ContentVersion, error) {
	log := logger.FromContext(ctx)

	version := models.ContentVersion{ID: models.CurrentVersionID}
	var checksumsJSON []byte

	err := row.Scan(
		&version.Version,
		&checksumsJSON,
		&version.TotalStories,
		&version.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContentVersion{}, ErrVersionNotFound
		}
		log.Err(err).
			Str("func", "contentVersionRepository.scanContentVersion").
			Msg("failed to scan content version row")
		return models.ContentVersion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(checksumsJSON, &version.StoryChecksums); err != nil {
		log.Err(err).
			Str("func", "contentVersionRepository.scanContentVersion").
			Msg("failed to decode story checksums")
		return models.ContentVersion{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	if version.StoryChecksums == nil {
		version.StoryChecksums = make(map[string]string)
	}

	return version, nil
}
