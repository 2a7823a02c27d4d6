package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

type httpGatewayAdapter struct {
	client *utils.HTTPClient

	// versionClient shares the base URL but carries the shorter
	// version-check timeout, so an unreachable gateway fails the probe fast
	// instead of stalling the whole sync cycle.
	versionClient *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs an HTTP/REST implementation of
// [GatewayAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures two underlying clients: one with
// cfg.RequestTimeout for delta exchanges and downloads, and one with
// cfg.VersionCheckTimeout for the version probe.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGatewayAdapter(cfg config.ClientAdapter, logger *logger.Logger) (GatewayAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := utils.NewHTTPClientWithTimeout(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	versionTimeout := cfg.VersionCheckTimeout
	if versionTimeout <= 0 {
		versionTimeout = cfg.RequestTimeout
	}
	versionClient := utils.NewHTTPClientWithTimeout(versionTimeout)
	versionClient.SetBaseURL(baseURL)

	return &httpGatewayAdapter{client: client, versionClient: versionClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetContentVersion implements [GatewayAdapter]. It GETs
// /api/stories/version using the short-timeout probe client.
func (h *httpGatewayAdapter) GetContentVersion(ctx context.Context) (models.ContentVersionResponse, error) {
	resp, err := h.versionClient.R().
		SetContext(ctx).
		Get("/api/stories/version")
	if err != nil {
		return models.ContentVersionResponse{}, fmt.Errorf("%w: version request: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContentVersionResponse{}, err
	}

	var version models.ContentVersionResponse
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return models.ContentVersionResponse{}, fmt.Errorf("decode version response: %w", err)
	}

	return version, nil
}

// DeltaSync implements [GatewayAdapter]. It POSTs the client's checksum
// declaration to /api/stories/delta.
func (h *httpGatewayAdapter) DeltaSync(ctx context.Context, req models.DeltaSyncRequest) (models.DeltaSyncResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/stories/delta")
	if err != nil {
		return models.DeltaSyncResponse{}, fmt.Errorf("delta request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeltaSyncResponse{}, err
	}

	var delta models.DeltaSyncResponse
	if err = json.Unmarshal(resp.Body(), &delta); err != nil {
		return models.DeltaSyncResponse{}, fmt.Errorf("decode delta response: %w", err)
	}

	return delta, nil
}

// BatchAssetURLs implements [GatewayAdapter]. It POSTs the path list to
// /api/assets/batch-urls.
func (h *httpGatewayAdapter) BatchAssetURLs(ctx context.Context, paths []string) (models.BatchURLsResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchURLsRequest{Paths: paths}).
		Post("/api/assets/batch-urls")
	if err != nil {
		return models.BatchURLsResponse{}, fmt.Errorf("batch urls request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchURLsResponse{}, err
	}

	var batch models.BatchURLsResponse
	if err = json.Unmarshal(resp.Body(), &batch); err != nil {
		return models.BatchURLsResponse{}, fmt.Errorf("decode batch urls response: %w", err)
	}

	return batch, nil
}

// DownloadAsset implements [GatewayAdapter]. Absolute URLs bypass the
// configured base URL, which resty handles natively, so cdn and direct
// strategies work through the same call as gateway-relative signed URLs.
func (h *httpGatewayAdapter) DownloadAsset(ctx context.Context, signedURL string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(signedURL)
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
