package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

// storyRepository is the PostgreSQL-backed implementation of
// [StoryRepository]. Story pages are stored denormalised as a JSONB column;
// a story is always read and written as a whole, which keeps the delta
// endpoint a single round trip per story set.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type storyRepository struct {
	*DB
	logger *logger.Logger
}

// NewStoryRepository constructs a [StoryRepository] backed by the provided
// database connection and logger.
func NewStoryRepository(db *DB, logger *logger.Logger) StoryRepository {
	logger.Debug().Msg("creating story repository")
	return &storyRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllStories returns every story in the catalog ordered by ID.
func (r *storyRepository) GetAllStories(ctx context.Context) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllStories)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.GetAllStories").
			Msg("failed to execute query for getting all stories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.scanStories(ctx, rows)
}

// GetStoriesByIDs returns the stories whose IDs are listed in storyIDs.
// IDs with no matching row are silently absent from the result; callers that
// need the distinction compare lengths.
func (r *storyRepository) GetStoriesByIDs(ctx context.Context, storyIDs []string) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	if len(storyIDs) == 0 {
		return []models.Story{}, nil
	}

	query, args, err := buildSelectStoriesByIDsQuery(ctx, storyIDs)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.GetStoriesByIDs").
			Int("ids_count", len(storyIDs)).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.GetStoriesByIDs").
			Int("ids_count", len(storyIDs)).
			Msg("failed to execute query for getting requested stories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.scanStories(ctx, rows)
}

// GetStoriesByCategory returns available stories in the given category.
func (r *storyRepository) GetStoriesByCategory(ctx context.Context, category string) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStoriesByCategoryQuery(ctx, category)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.GetStoriesByCategory").
			Str("category", category).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.GetStoriesByCategory").
			Str("category", category).
			Msg("failed to execute query for getting stories by category")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.scanStories(ctx, rows)
}

// GetStory returns a single story by ID.
//
// Error handling:
//   - No matching row → [ErrStoryNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *storyRepository) GetStory(ctx context.Context, storyID string) (models.Story, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getStoryByID, storyID)

	story, err := r.scanStoryRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "storyRepository.GetStory").
				Str("story_id", storyID).
				Msg("story not found")
			return models.Story{}, ErrStoryNotFound
		}
		log.Err(err).
			Str("func", "storyRepository.GetStory").
			Str("story_id", storyID).
			Msg("failed to scan story row")
		return models.Story{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return story, nil
}

// SaveStory upserts a story record. The pages slice is serialised to JSONB
// as part of the same statement, so a story and its pages never diverge.
// On success story.UpdatedAt is populated with the server-assigned timestamp.
func (r *storyRepository) SaveStory(ctx context.Context, story *models.Story) error {
	log := logger.FromContext(ctx)

	pagesJSON, err := json.Marshal(story.Pages)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.SaveStory").
			Str("story_id", story.ID).
			Msg("failed to encode story pages")
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	var updatedAt time.Time
	err = r.DB.QueryRowContext(ctx, upsertStory,
		story.ID,
		story.Title,
		story.Category,
		story.Description,
		story.Version,
		story.Premium,
		story.Available,
		pagesJSON,
	).Scan(&updatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.SaveStory").
			Str("story_id", story.ID).
			Msg("failed to execute upsert for story")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	story.UpdatedAt = &updatedAt

	return nil
}

// DeleteStory removes a story row.
//
// Error handling:
//   - Zero rows affected → [ErrStoryNotFound].
func (r *storyRepository) DeleteStory(ctx context.Context, storyID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteStoryByID, storyID)
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.DeleteStory").
			Str("story_id", storyID).
			Msg("failed to execute delete for story")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "storyRepository.DeleteStory").
			Str("story_id", storyID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "storyRepository.DeleteStory").
			Str("story_id", storyID).
			Msg("story not found")
		return ErrStoryNotFound
	}

	return nil
}

// scanStories drains rows into a story slice, decoding the pages JSONB
// column for every row.
func (r *storyRepository) scanStories(ctx context.Context, rows *sql.Rows) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	stories := make([]models.Story, 0, 50)

	for rows.Next() {
		var story models.Story
		var pagesJSON []byte
		var updatedAt sql.NullTime

		scanErr := rows.Scan(
			&story.ID,
			&story.Title,
			&story.Category,
			&story.Description,
			&story.Version,
			&story.Premium,
			&story.Available,
			&pagesJSON,
			&updatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "storyRepository.scanStories").
				Msg("failed to scan story row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if len(pagesJSON) > 0 {
			if err := json.Unmarshal(pagesJSON, &story.Pages); err != nil {
				log.Err(err).
					Str("func", "storyRepository.scanStories").
					Str("story_id", story.ID).
					Msg("failed to decode story pages")
				return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
			}
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			story.UpdatedAt = &t
		}

		stories = append(stories, story)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "storyRepository.scanStories").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stories, nil
}

// scanStoryRow scans a single story row including JSONB page decoding.
func (r *storyRepository) scanStoryRow(row *sql.Row) (models.Story, error) {
	var story models.Story
	var pagesJSON []byte
	var updatedAt sql.NullTime

	if err := row.Scan(
		&story.ID,
		&story.Title,
		&story.Category,
		&story.Description,
		&story.Version,
		&story.Premium,
		&story.Available,
		&pagesJSON,
		&updatedAt,
	); err != nil {
		return models.Story{}, err
	}

	if len(pagesJSON) > 0 {
		if err := json.Unmarshal(pagesJSON, &story.Pages); err != nil {
			return models.Story{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		story.UpdatedAt = &t
	}

	return story, nil
}
