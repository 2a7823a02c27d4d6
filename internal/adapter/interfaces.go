// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the sync client uses to talk
// to the storysync gateway.
//
// The primary abstraction is [GatewayAdapter], which decouples the sync
// orchestrator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGatewayAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrServerUnavailable] for an unreachable gateway).
package adapter

import (
	"context"

	"github.com/nightlight-app/storysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GatewayAdapter defines transport-agnostic communication with the storysync
// gateway. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type GatewayAdapter interface {
	// GetContentVersion fetches the gateway's current version counters and
	// checksum map. It is the cheap probe the client runs before deciding
	// whether a full delta exchange is worth it, so implementations should
	// bound it with a short timeout independent of the regular request
	// timeout.
	GetContentVersion(ctx context.Context) (models.ContentVersionResponse, error)

	// DeltaSync posts the client's full checksum declaration and returns the
	// minimal transfer set: changed stories, deleted IDs, and the complete
	// current checksum map.
	DeltaSync(ctx context.Context, req models.DeltaSyncRequest) (models.DeltaSyncResponse, error)

	// BatchAssetURLs resolves up to [models.MaxBatchPaths] asset paths into
	// access URLs in one round trip. Unresolvable paths are reported in the
	// response's Failed list, not as an error.
	BatchAssetURLs(ctx context.Context, paths []string) (models.BatchURLsResponse, error)

	// DownloadAsset fetches the asset payload behind a URL previously
	// resolved via BatchAssetURLs. The URL may be absolute (cdn/direct
	// strategies) or gateway-relative (signed strategy).
	DownloadAsset(ctx context.Context, signedURL string) ([]byte, error)
}
