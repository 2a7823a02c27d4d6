// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nightlight-app/storysync/internal/adapter"
	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

const defaultDownloadConcurrency = 4

type syncOrchestrator struct {
	gateway  adapter.GatewayAdapter
	versions VersionManager
	stories  StoryCache
	assets   AssetCache

	downloadConcurrency int

	mu       sync.Mutex
	inflight *inflightSync

	logger *logger.Logger
}

// inflightSync is the shared state of one running cycle. Joining callers
// block on done and read stats/err afterwards; both fields are written
// exactly once, before done is closed.
type inflightSync struct {
	done  chan struct{}
	stats models.SyncStats
	err   error
}

// NewSyncOrchestrator wires the full sync cycle together.
func NewSyncOrchestrator(
	gateway adapter.GatewayAdapter,
	versions VersionManager,
	stories StoryCache,
	assets AssetCache,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) SyncOrchestrator {
	concurrency := cfg.DownloadConcurrency
	if concurrency <= 0 {
		concurrency = defaultDownloadConcurrency
	}

	return &syncOrchestrator{
		gateway:             gateway,
		versions:            versions,
		stories:             stories,
		assets:              assets,
		downloadConcurrency: concurrency,
		logger:              logger,
	}
}

// Sync implements [SyncOrchestrator]. The first caller runs the cycle;
// callers arriving while it runs wait for its result instead of starting a
// second one. A joining caller whose own context expires leaves early, but
// the running cycle is unaffected.
func (o *syncOrchestrator) Sync(ctx context.Context) (models.SyncStats, error) {
	o.mu.Lock()
	if call := o.inflight; call != nil {
		o.mu.Unlock()
		select {
		case <-call.done:
			return call.stats, call.err
		case <-ctx.Done():
			return models.SyncStats{}, ctx.Err()
		}
	}

	call := &inflightSync{done: make(chan struct{})}
	o.inflight = call
	o.mu.Unlock()

	call.stats, call.err = o.runCycle(ctx)

	o.mu.Lock()
	o.inflight = nil
	o.mu.Unlock()
	close(call.done)

	return call.stats, call.err
}

func (o *syncOrchestrator) runCycle(ctx context.Context) (models.SyncStats, error) {
	var stats models.SyncStats

	check := o.versions.CheckVersions(ctx)
	stats.APICalls++ // the version probe

	if check.Server == nil {
		o.logger.Info().Msg("gateway unreachable, keeping cached content")
		return stats, nil
	}
	if !check.NeedsStorySync && !check.NeedsAssetSync {
		stats.StorySynced = true
		stats.AssetSynced = true
		return stats, nil
	}

	committed := check.Local
	if committed == nil {
		committed = &models.LocalVersion{}
	}

	if check.NeedsStorySync {
		if err := o.syncStories(ctx, committed, &stats); err != nil {
			return stats, err
		}
	} else {
		stats.StorySynced = true
	}

	if err := o.syncAssets(ctx, &stats); err != nil {
		return stats, err
	}

	// Commit granularly: each counter advances only when its phase fully
	// succeeded, so a partially failed cycle is retried by the next one.
	// Zero counters are left out of the merge and keep their stored values.
	var next models.LocalVersion
	if stats.StorySynced {
		next.Stories = check.Server.Stories
	}
	if stats.AssetsFailed == 0 {
		next.Assets = check.Server.Assets
		stats.AssetSynced = true
	}

	if err := o.versions.UpdateLocalVersion(next); err != nil {
		return stats, fmt.Errorf("commit local version: %w", err)
	}

	o.logger.Info().
		Int("stories_updated", stats.StoriesUpdated).
		Int("assets_downloaded", stats.AssetsDownloaded).
		Int("assets_failed", stats.AssetsFailed).
		Int("api_calls", stats.APICalls).
		Msg("sync cycle finished")

	return stats, nil
}

// syncStories runs the delta exchange and applies its result to the story
// cache. Any failure here aborts the cycle: without an applied delta the
// asset enumeration below would download against stale stories.
func (o *syncOrchestrator) syncStories(ctx context.Context, committed *models.LocalVersion, stats *models.SyncStats) error {
	checksums, err := o.stories.Checksums(ctx)
	if err != nil {
		return err
	}

	clientVersion := committed.Stories
	lastSync := time.Now().UnixMilli()
	delta, err := o.gateway.DeltaSync(ctx, models.DeltaSyncRequest{
		ClientVersion:     &clientVersion,
		StoryChecksums:    checksums,
		LastSyncTimestamp: &lastSync,
	})
	stats.APICalls++
	if err != nil {
		return fmt.Errorf("delta sync: %w", err)
	}

	updated, deleted, err := o.stories.ApplyDelta(ctx, delta.Stories, delta.StoryChecksums, delta.DeletedStoryIDs)
	if err != nil {
		return err
	}

	stats.StoriesUpdated = updated
	stats.StoriesDeleted = deleted
	stats.StorySynced = true
	return nil
}

// syncAssets resolves and downloads every referenced asset that is not yet
// cached. Per-asset failures are recorded in stats and never abort the
// cycle; only context cancellation does.
func (o *syncOrchestrator) syncAssets(ctx context.Context, stats *models.SyncStats) error {
	paths, err := o.stories.AssetPaths(ctx)
	if err != nil {
		return err
	}

	uncached := o.assets.PathsNotCached(ctx, paths)
	stats.AssetsSkipped = len(paths) - len(uncached)
	if len(uncached) == 0 {
		return nil
	}

	for start := 0; start < len(uncached); start += models.MaxBatchPaths {
		if err = ctx.Err(); err != nil {
			return err
		}

		end := start + models.MaxBatchPaths
		if end > len(uncached) {
			end = len(uncached)
		}
		chunk := uncached[start:end]

		batch, err := o.gateway.BatchAssetURLs(ctx, chunk)
		stats.APICalls++
		if err != nil {
			o.logger.Warn().Err(err).Int("paths", len(chunk)).Msg("batch url resolution failed")
			stats.AssetsFailed += len(chunk)
			stats.FailedAssets = append(stats.FailedAssets, chunk...)
			continue
		}

		stats.AssetsFailed += len(batch.Failed)
		stats.FailedAssets = append(stats.FailedAssets, batch.Failed...)

		o.downloadBatch(ctx, batch.URLs, stats)
	}

	return ctx.Err()
}

// downloadBatch fetches the resolved URLs with bounded fan-out and records
// per-asset outcomes in stats.
func (o *syncOrchestrator) downloadBatch(ctx context.Context, entries []models.SignedURLEntry, stats *models.SyncStats) {
	var (
		wg      sync.WaitGroup
		statsMu sync.Mutex
	)
	sem := make(chan struct{}, o.downloadConcurrency)

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(entry models.SignedURLEntry) {
			defer wg.Done()
			defer func() { <-sem }()

			err := o.downloadOne(ctx, entry)

			statsMu.Lock()
			defer statsMu.Unlock()
			if err != nil {
				o.logger.Warn().Err(err).Str("path", entry.Path).Msg("asset download failed")
				stats.AssetsFailed++
				stats.FailedAssets = append(stats.FailedAssets, entry.Path)
				return
			}
			stats.AssetsDownloaded++
		}(entry)
	}

	wg.Wait()
}

func (o *syncOrchestrator) downloadOne(ctx context.Context, entry models.SignedURLEntry) error {
	data, err := o.gateway.DownloadAsset(ctx, entry.SignedURL)
	if err != nil {
		return err
	}
	return o.assets.Store(ctx, entry.Path, data, "")
}
