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

type storyCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewStoryCacheRepository constructs the SQLite-backed [StoryCacheRepository].
// Stories are stored as JSON payloads alongside the server checksum they
// were synced under.
func NewStoryCacheRepository(db *DB, logger *logger.Logger) StoryCacheRepository {
	return &storyCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *storyCacheRepository) UpsertStory(ctx context.Context, story models.Story, checksum string) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(story)
	if err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.UpsertStory").
			Str("story_id", story.ID).
			Msg("failed to encode story payload")
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	if _, err := r.DB.ExecContext(ctx, upsertCachedStory, story.ID, payload, checksum); err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.UpsertStory").
			Str("story_id", story.ID).
			Msg("failed to execute upsert for cached story")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *storyCacheRepository) GetStory(ctx context.Context, storyID string) (models.Story, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := r.DB.QueryRowContext(ctx, getCachedStory, storyID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Story{}, ErrCachedStoryNotFound
		}
		log.Err(err).
			Str("func", "storyCacheRepository.GetStory").
			Str("story_id", storyID).
			Msg("failed to scan cached story row")
		return models.Story{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var story models.Story
	if err := json.Unmarshal(payload, &story); err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.GetStory").
			Str("story_id", storyID).
			Msg("failed to decode story payload")
		return models.Story{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return story, nil
}

func (r *storyCacheRepository) GetAllStories(ctx context.Context) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCachedStories)
	if err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.GetAllStories").
			Msg("failed to execute query for getting all cached stories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stories := make([]models.Story, 0, 50)

	for rows.Next() {
		var payload []byte
		if scanErr := rows.Scan(&payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "storyCacheRepository.GetAllStories").
				Msg("failed to scan cached story row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var story models.Story
		if err := json.Unmarshal(payload, &story); err != nil {
			log.Err(err).
				Str("func", "storyCacheRepository.GetAllStories").
				Msg("failed to decode story payload")
			return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}

		stories = append(stories, story)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "storyCacheRepository.GetAllStories").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stories, nil
}

func (r *storyCacheRepository) DeleteStory(ctx context.Context, storyID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCachedStory, storyID); err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.DeleteStory").
			Str("story_id", storyID).
			Msg("failed to execute delete for cached story")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetChecksums returns the story ID → checksum map describing the client's
// current local state. This map is sent verbatim in the delta sync request.
func (r *storyCacheRepository) GetChecksums(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getCachedChecksums)
	if err != nil {
		log.Err(err).
			Str("func", "storyCacheRepository.GetChecksums").
			Msg("failed to execute query for getting cached checksums")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	checksums := make(map[string]string)

	for rows.Next() {
		var storyID, checksum string
		if scanErr := rows.Scan(&storyID, &checksum); scanErr != nil {
			log.Err(scanErr).
				Str("func", "storyCacheRepository.GetChecksums").
				Msg("failed to scan checksum row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		checksums[storyID] = checksum
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "storyCacheRepository.GetChecksums").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return checksums, nil
}
