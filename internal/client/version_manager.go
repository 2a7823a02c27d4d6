// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nightlight-app/storysync/internal/adapter"
	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

type versionManager struct {
	snapshotPath string
	gateway      adapter.GatewayAdapter

	logger *logger.Logger
}

// NewVersionManager builds a [VersionManager] persisting its snapshot at
// cfg.SnapshotPath (defaulting to version.json inside the cache directory).
func NewVersionManager(cfg config.ClientStorage, gateway adapter.GatewayAdapter, logger *logger.Logger) VersionManager {
	snapshotPath := cfg.SnapshotPath
	if snapshotPath == "" {
		snapshotPath = filepath.Join(cfg.CacheDir, "version.json")
	}

	return &versionManager{snapshotPath: snapshotPath, gateway: gateway, logger: logger}
}

// LocalVersion implements [VersionManager]. Missing and unreadable snapshots
// both map to nil: the only safe reaction to a snapshot of unknown state is
// a full resync, and nil is what triggers one.
func (m *versionManager) LocalVersion() *models.LocalVersion {
	data, err := os.ReadFile(m.snapshotPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn().Err(err).Str("path", m.snapshotPath).Msg("cannot read version snapshot, treating as absent")
		}
		return nil
	}

	var version models.LocalVersion
	if err = json.Unmarshal(data, &version); err != nil {
		m.logger.Warn().Err(err).Str("path", m.snapshotPath).Msg("corrupt version snapshot, treating as absent")
		return nil
	}

	return &version
}

// SaveLocalVersion implements [VersionManager]. The snapshot is written to a
// temp file and renamed into place so a crash mid-write leaves the previous
// snapshot intact rather than a truncated one.
func (m *versionManager) SaveLocalVersion(version models.LocalVersion) error {
	data, err := json.Marshal(version)
	if err != nil {
		return fmt.Errorf("encode version snapshot: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(m.snapshotPath), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := m.snapshotPath + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write version snapshot: %w", err)
	}
	if err = os.Rename(tmp, m.snapshotPath); err != nil {
		return fmt.Errorf("replace version snapshot: %w", err)
	}

	return nil
}

// UpdateLocalVersion implements [VersionManager]. The merge keeps the
// snapshot monotonic under granular commits: a phase that did not finish
// passes a zero counter and the previous value survives.
func (m *versionManager) UpdateLocalVersion(partial models.LocalVersion) error {
	next := models.LocalVersion{}
	if current := m.LocalVersion(); current != nil {
		next = *current
	}

	if partial.Stories != 0 {
		next.Stories = partial.Stories
	}
	if partial.Assets != 0 {
		next.Assets = partial.Assets
	}
	next.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	return m.SaveLocalVersion(next)
}

// ServerVersion implements [VersionManager]. A gateway that reports no
// independent asset counter gets the story counter mirrored into Assets, so
// comparisons downstream never have to special-case older servers.
func (m *versionManager) ServerVersion(ctx context.Context) *models.LocalVersion {
	version, err := m.gateway.GetContentVersion(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("version check failed, serving cached content")
		return nil
	}

	assets := version.AssetVersion
	if assets == 0 {
		assets = version.Version
	}

	return &models.LocalVersion{Stories: version.Version, Assets: assets}
}

// CheckVersions implements [VersionManager].
func (m *versionManager) CheckVersions(ctx context.Context) models.VersionCheck {
	server := m.ServerVersion(ctx)
	if server == nil {
		return models.VersionCheck{}
	}

	local := m.LocalVersion()
	if local == nil {
		return models.VersionCheck{
			NeedsStorySync: true,
			NeedsAssetSync: true,
			Server:         server,
		}
	}

	// Any mismatch raises the flag, not just a server that moved ahead: a
	// restored or redeployed gateway can legitimately report lower counters
	// than the snapshot, and stale local content must still resync.
	return models.VersionCheck{
		NeedsStorySync: server.Stories != local.Stories,
		NeedsAssetSync: server.Assets != local.Assets,
		Local:          local,
		Server:         server,
	}
}

// Reset implements [VersionManager].
func (m *versionManager) Reset() error {
	if err := os.Remove(m.snapshotPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove version snapshot: %w", err)
	}
	return nil
}
