package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the gateway endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// VersionCheckTimeout bounds the server-version probe only. Kept short
	// so an unreachable server is detected fast and the client falls back
	// to its cache.
	VersionCheckTimeout time.Duration
}

// ClientStorage groups client cache backend settings.
type ClientStorage struct {
	// CacheDir is the directory holding downloaded asset payloads.
	CacheDir string
	// DSN is the SQLite connection string for the asset cache index.
	DSN string
	// SnapshotPath is the file holding the persisted local version snapshot.
	SnapshotPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	// Zero disables the periodic job.
	SyncInterval time.Duration
	// DownloadConcurrency caps parallel asset downloads within one cycle.
	DownloadConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:         cfg.Client.ServerAddress,
			RequestTimeout:      cfg.Client.RequestTimeout,
			VersionCheckTimeout: cfg.Client.VersionCheckTimeout,
		},
		Storage: ClientStorage{
			CacheDir:     cfg.Client.CacheDir,
			DSN:          filepath.Join(cfg.Client.CacheDir, "asset_cache.db"),
			SnapshotPath: cfg.Client.SnapshotPath,
		},
		Workers: ClientWorkers{
			SyncInterval:        cfg.Client.SyncInterval,
			DownloadConcurrency: cfg.Client.DownloadConcurrency,
		},
	}

	return clientCfg, clientCfg.validate()
}
