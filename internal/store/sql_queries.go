// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	getAllStories = `SELECT id, title, category, description, version, premium, available, pages, updated_at
	FROM stories
	ORDER BY id;`

	getStoryByID = `SELECT id, title, category, description, version, premium, available, pages, updated_at
	FROM stories
	WHERE id = $1;`

	upsertStory = `INSERT INTO stories (id, title, category, description, version, premium, available, pages, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	ON CONFLICT (id) DO UPDATE SET
		title       = EXCLUDED.title,
		category    = EXCLUDED.category,
		description = EXCLUDED.description,
		version     = EXCLUDED.version,
		premium     = EXCLUDED.premium,
		available   = EXCLUDED.available,
		pages       = EXCLUDED.pages,
		updated_at  = NOW()
	RETURNING updated_at;`

	deleteStoryByID = `DELETE FROM stories WHERE id = $1;`

	getContentVersion = `SELECT version, story_checksums, total_stories, last_updated
	FROM content_versions
	WHERE id = $1;`

	getContentVersionForUpdate = `SELECT version, story_checksums, total_stories, last_updated
	FROM content_versions
	WHERE id = $1
	FOR UPDATE;`

	upsertContentVersion = `INSERT INTO content_versions (id, version, story_checksums, total_stories, last_updated)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		version         = EXCLUDED.version,
		story_checksums = EXCLUDED.story_checksums,
		total_stories   = EXCLUDED.total_stories,
		last_updated    = EXCLUDED.last_updated;`

	getAssetVersion = `SELECT version, asset_checksums, total_assets, total_size_bytes, last_updated
	FROM asset_versions
	WHERE id = $1;`

	getAssetVersionForUpdate = `SELECT version, asset_checksums, total_assets, total_size_bytes, last_updated
	FROM asset_versions
	WHERE id = $1
	FOR UPDATE;`

	upsertAssetVersion = `INSERT INTO asset_versions (id, version, asset_checksums, total_assets, total_size_bytes, last_updated)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		version          = EXCLUDED.version,
		asset_checksums  = EXCLUDED.asset_checksums,
		total_assets     = EXCLUDED.total_assets,
		total_size_bytes = EXCLUDED.total_size_bytes,
		last_updated     = EXCLUDED.last_updated;`
)

// storyColumns lists the stories table columns in scan order. Shared by the
// const queries above and the dynamic builders below so both stay in sync.
var storyColumns = []string{
	"id", "title", "category", "description",
	"version", "premium", "available", "pages", "updated_at",
}

// buildSelectStoriesByIDsQuery builds a parameterised SELECT returning the
// stories whose IDs are in storyIDs, ordered by ID for deterministic
// responses. Uses PostgreSQL $N placeholders.
func buildSelectStoriesByIDsQuery(_ context.Context, storyIDs []string) (string, []any, error) {
	query, args, err := sq.
		Select(storyColumns...).
		From("stories").
		Where(sq.Eq{"id": storyIDs}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectStoriesByCategoryQuery builds a SELECT filtered by category,
// restricted to available stories only.
func buildSelectStoriesByCategoryQuery(_ context.Context, category string) (string, []any, error) {
	query, args, err := sq.
		Select(storyColumns...).
		From("stories").
		Where(sq.Eq{"category": category, "available": true}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
