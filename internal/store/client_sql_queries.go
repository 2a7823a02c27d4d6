// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createCachedAssetsTable = `
		CREATE TABLE IF NOT EXISTS cached_assets (
			path      TEXT PRIMARY KEY,
			file_path TEXT NOT NULL,
			checksum  TEXT NOT NULL,
			size      INTEGER NOT NULL,
			cached_at INTEGER NOT NULL
		);`

	createCachedStoriesTable = `
		CREATE TABLE IF NOT EXISTS cached_stories (
			id       TEXT PRIMARY KEY,
			payload  TEXT NOT NULL,
			checksum TEXT NOT NULL
		);`

	getCachedAsset = `
		SELECT
			path,
			file_path,
			checksum,
			size,
			cached_at
		FROM cached_assets
		WHERE path = $1;`

	getAllCachedAssets = `
		SELECT
			path,
			file_path,
			checksum,
			size,
			cached_at
		FROM cached_assets
		ORDER BY path;`

	putCachedAsset = `
		INSERT INTO cached_assets (path, file_path, checksum, size, cached_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (path) DO UPDATE SET
			file_path = excluded.file_path,
			checksum  = excluded.checksum,
			size      = excluded.size,
			cached_at = excluded.cached_at;`

	deleteCachedAsset = `
		DELETE FROM cached_assets
		WHERE path = $1;`

	totalCachedSize = `
		SELECT COALESCE(SUM(size), 0)
		FROM cached_assets;`

	getCachedStory = `
		SELECT payload
		FROM cached_stories
		WHERE id = $1;`

	getAllCachedStories = `
		SELECT payload
		FROM cached_stories
		ORDER BY id;`

	upsertCachedStory = `
		INSERT INTO cached_stories (id, payload, checksum)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			payload  = excluded.payload,
			checksum = excluded.checksum;`

	deleteCachedStory = `
		DELETE FROM cached_stories
		WHERE id = $1;`

	getCachedChecksums = `
		SELECT id, checksum
		FROM cached_stories;`
)
