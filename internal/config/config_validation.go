// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// URL strategy names accepted by [Assets.URLStrategy].
const (
	URLStrategySigned = "signed"
	URLStrategyDirect = "direct"
	URLStrategyCDN    = "cdn"
)

// Defaults applied after all sources have been merged. A field keeps its
// merged value if any source set it; only genuinely unset fields fall back.
const (
	defaultHTTPAddress         = "localhost:8080"
	defaultRequestTimeout      = 30 * time.Second
	defaultURLStrategy         = URLStrategySigned
	defaultSignedURLTTL        = 60 * time.Minute
	defaultVersionCheckTimeout = 5 * time.Second
	defaultDownloadConcurrency = 4
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Assets.Dir != "" && cfg.Storage.Assets.URLStrategy == "" {
		cfg.Storage.Assets.URLStrategy = defaultURLStrategy
	}
	if cfg.Storage.Assets.SignedURLTTL == 0 {
		cfg.Storage.Assets.SignedURLTTL = defaultSignedURLTTL
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Client.VersionCheckTimeout == 0 {
		cfg.Client.VersionCheckTimeout = defaultVersionCheckTimeout
	}
	if cfg.Client.DownloadConcurrency == 0 {
		cfg.Client.DownloadConcurrency = defaultDownloadConcurrency
	}
	if cfg.Client.SnapshotPath == "" && cfg.Client.CacheDir != "" {
		cfg.Client.SnapshotPath = filepath.Join(cfg.Client.CacheDir, "version.json")
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants a gateway process needs at startup. Client-only fields are
// validated separately by [ClientConfig.validate], and the asset URL setup
// is checked only when an asset store is actually configured, so a
// client-only deployment does not need gateway settings and vice versa.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Assets.Dir == "" {
		return nil
	}

	switch cfg.Storage.Assets.URLStrategy {
	case URLStrategySigned:
		if cfg.Storage.Assets.SignKey == "" {
			return ErrInvalidAssetsConfigs
		}
	case URLStrategyDirect:
		if cfg.Storage.Assets.BaseURL == "" {
			return ErrInvalidAssetsConfigs
		}
	case URLStrategyCDN:
		if cfg.Storage.Assets.CDNHost == "" {
			return ErrInvalidAssetsConfigs
		}
	default:
		return ErrInvalidAssetsConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CacheDir == "" || cfg.Storage.SnapshotPath == "" {
		return ErrInvalidClientStorageConfigs
	}

	return nil
}
