package client

import (
	"context"
	"time"

	"github.com/nightlight-app/storysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// VersionManager owns the persisted local version snapshot and compares it
// against the gateway's current counters.
type VersionManager interface {
	// LocalVersion returns the persisted snapshot, or nil when no snapshot
	// exists or the file cannot be parsed. A corrupt snapshot is treated
	// the same as an absent one so the client recovers with a full resync
	// instead of refusing to start.
	LocalVersion() *models.LocalVersion

	// SaveLocalVersion persists the snapshot atomically. Unlike reads,
	// write errors are propagated: silently losing the snapshot would make
	// every subsequent launch resync from scratch.
	SaveLocalVersion(version models.LocalVersion) error

	// UpdateLocalVersion merges partial into the stored snapshot and
	// persists the result: non-zero counters override, zero counters keep
	// their previous values, and the LastUpdated stamp is refreshed.
	UpdateLocalVersion(partial models.LocalVersion) error

	// ServerVersion probes the gateway for its current counters. Any
	// transport error yields nil without an error, so an offline device
	// degrades to serving cached content.
	ServerVersion(ctx context.Context) *models.LocalVersion

	// CheckVersions compares local and server state. Nil local means both
	// sync flags are raised; nil server means both are lowered.
	CheckVersions(ctx context.Context) models.VersionCheck

	// Reset removes the snapshot file. The next CheckVersions behaves like
	// a fresh install.
	Reset() error
}

// AssetCache stores downloaded asset payloads on disk and indexes them by
// store path.
type AssetCache interface {
	// Has reports whether path is cached with an intact payload file.
	// A missing or corrupt index row counts as a miss, never as an error.
	Has(ctx context.Context, path string) bool

	// Store writes the payload to the cache directory and upserts the
	// index row. When checksum is non-empty the payload is verified
	// against it first and [ErrChecksumMismatch] is returned on a
	// mismatch; when empty, the checksum is computed from the data.
	Store(ctx context.Context, path string, data []byte, checksum string) error

	// PathsNotCached filters paths down to those that still need a
	// download, preserving input order.
	PathsNotCached(ctx context.Context, paths []string) []string

	// Remove evicts one cached asset: payload file and index row.
	Remove(ctx context.Context, path string) error

	// Clear evicts everything.
	Clear(ctx context.Context) error
}

// StoryCache stores synced stories together with the server checksums they
// were synced under.
type StoryCache interface {
	// ApplyDelta upserts the changed stories and evicts the deleted IDs.
	// checksums is the server's full map; a story absent from it is
	// recorded under its locally computed checksum.
	ApplyDelta(ctx context.Context, stories []models.Story, checksums map[string]string, deletedIDs []string) (updated, deleted int, err error)

	// Checksums returns the local story ID → checksum map declared in the
	// next delta request. Never nil.
	Checksums(ctx context.Context) (map[string]string, error)

	// Stories returns all cached stories.
	Stories(ctx context.Context) ([]models.Story, error)

	// AssetPaths enumerates every asset path referenced by cached stories,
	// deduplicated, in story order.
	AssetPaths(ctx context.Context) ([]string, error)
}

// SyncOrchestrator runs the full delta-sync cycle.
type SyncOrchestrator interface {
	// Sync runs one cycle, or joins the cycle already in flight: concurrent
	// callers share the in-flight cycle's result instead of duplicating
	// network traffic.
	Sync(ctx context.Context) (models.SyncStats, error)
}

// SyncJob runs the orchestrator periodically in the background.
type SyncJob interface {
	// Start launches the background loop. It stops any previously running
	// job first. The loop exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// when the job is not running.
	Stop()
}
