// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// URLStrategy turns a validated asset path into an access URL. The active
// strategy is selected once at startup from config; all strategies are pure
// and safe for concurrent use.
type URLStrategy interface {
	Name() string
	Resolve(path string) (models.SignedURLEntry, error)
}

// NewURLStrategy selects the strategy implementation for cfg.URLStrategy.
// An empty strategy name falls back to signed, matching config defaults.
func NewURLStrategy(cfg config.Assets) (URLStrategy, error) {
	switch cfg.URLStrategy {
	case config.URLStrategySigned, "":
		return &signedStrategy{
			baseURL: strings.TrimRight(cfg.BaseURL, "/"),
			signKey: cfg.SignKey,
			ttl:     cfg.SignedURLTTL,
		}, nil
	case config.URLStrategyDirect:
		return &directStrategy{baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
	case config.URLStrategyCDN:
		return &cdnStrategy{host: normalizeCDNHost(cfg.CDNHost)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownURLStrategy, cfg.URLStrategy)
	}
}

// signedStrategy produces URLs pointing back at the gateway's download
// endpoint, carrying a time-limited HMAC-signed token bound to the path.
type signedStrategy struct {
	baseURL string
	signKey string
	ttl     time.Duration
}

func (s *signedStrategy) Name() string { return config.URLStrategySigned }

func (s *signedStrategy) Resolve(path string) (models.SignedURLEntry, error) {
	token, err := utils.GenerateAssetToken(path, s.ttl, s.signKey)
	if err != nil {
		return models.SignedURLEntry{}, fmt.Errorf("error signing asset url: %w", err)
	}

	return models.SignedURLEntry{
		Path: path,
		SignedURL: fmt.Sprintf("%s/api/assets/download?path=%s&token=%s",
			s.baseURL, url.QueryEscape(path), token),
		ExpiresAt: time.Now().Add(s.ttl).UnixMilli(),
	}, nil
}

// directStrategy joins the path onto a plain base URL. Used for local and
// emulator setups where assets are served without access control.
type directStrategy struct {
	baseURL string
}

func (s *directStrategy) Name() string { return config.URLStrategyDirect }

func (s *directStrategy) Resolve(path string) (models.SignedURLEntry, error) {
	return models.SignedURLEntry{
		Path:      path,
		SignedURL: s.baseURL + "/" + escapePath(path),
	}, nil
}

// cdnStrategy joins the path onto a CDN host. URLs do not expire; cache
// invalidation is handled by the CDN keying on the path.
type cdnStrategy struct {
	host string
}

func (s *cdnStrategy) Name() string { return config.URLStrategyCDN }

func (s *cdnStrategy) Resolve(path string) (models.SignedURLEntry, error) {
	return models.SignedURLEntry{
		Path:      path,
		SignedURL: s.host + "/" + escapePath(path),
	}, nil
}

func normalizeCDNHost(host string) string {
	host = strings.TrimRight(host, "/")
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return host
}

// escapePath percent-encodes each path segment while keeping the slashes
// that separate them.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
