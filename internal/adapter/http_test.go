// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpGatewayAdapter {
	t.Helper()
	cfg := config.ClientAdapter{
		HTTPAddress:         serverURL,
		RequestTimeout:      5 * time.Second,
		VersionCheckTimeout: time.Second,
	}

	a, err := NewHTTPGatewayAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGatewayAdapter)
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewHTTPGatewayAdapter_AddressValidation(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080"},
		{name: "bare host port gets scheme", address: "localhost:8080"},
		{name: "empty address", address: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPGatewayAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ── GetContentVersion ───────────────────────────────────────────────────────

func TestGetContentVersion_Success(t *testing.T) {
	want := models.ContentVersionResponse{
		ID:             "current",
		Version:        7,
		AssetVersion:   9,
		StoryChecksums: map[string]string{"story-1": "abc"},
		TotalStories:   1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/stories/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetContentVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetContentVersion_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetContentVersion(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestGetContentVersion_StorageUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			ErrorCode: models.ErrCodeStorageUnavailable,
			Message:   "storage unavailable",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetContentVersion(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Contains(t, err.Error(), models.ErrCodeStorageUnavailable)
}

// ── DeltaSync ───────────────────────────────────────────────────────────────

func TestDeltaSync_Success(t *testing.T) {
	want := models.DeltaSyncResponse{
		ServerVersion:   5,
		AssetVersion:    3,
		Stories:         []models.Story{{ID: "story-2", Title: "The Brave Turtle", Version: 2}},
		DeletedStoryIDs: []string{"story-9"},
		StoryChecksums:  map[string]string{"story-1": "abc", "story-2": "def"},
		TotalStories:    2,
		UpdatedCount:    1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/stories/delta", r.URL.Path)

		var req models.DeltaSyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ClientVersion)
		assert.Equal(t, int64(4), *req.ClientVersion)
		assert.Equal(t, map[string]string{"story-1": "abc", "story-9": "old"}, req.StoryChecksums)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.DeltaSync(context.Background(), models.DeltaSyncRequest{
		ClientVersion:     int64Ptr(4),
		StoryChecksums:    map[string]string{"story-1": "abc", "story-9": "old"},
		LastSyncTimestamp: int64Ptr(time.Now().UnixMilli()),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeltaSync_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			ErrorCode: models.ErrCodeMissingRequiredField,
			Message:   "missing required field: clientVersion",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.DeltaSync(context.Background(), models.DeltaSyncRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "clientVersion")
}

// ── BatchAssetURLs ──────────────────────────────────────────────────────────

func TestBatchAssetURLs_PartialFailure(t *testing.T) {
	want := models.BatchURLsResponse{
		URLs: []models.SignedURLEntry{
			{Path: "images/story-1/page1.png", SignedURL: "http://cdn/images/story-1/page1.png"},
		},
		Failed: []string{"images/story-1/missing.png"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assets/batch-urls", r.URL.Path)

		var req models.BatchURLsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Paths, 2)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.BatchAssetURLs(context.Background(), []string{
		"images/story-1/page1.png",
		"images/story-1/missing.png",
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── DownloadAsset ───────────────────────────────────────────────────────────

func TestDownloadAsset_RelativeURL(t *testing.T) {
	payload := []byte("png bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/assets/download", r.URL.Path)
		assert.Equal(t, "images/story-1/page1.png", r.URL.Query().Get("path"))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.DownloadAsset(context.Background(), "/api/assets/download?path=images%2Fstory-1%2Fpage1.png&token=tok")

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadAsset_AbsoluteURLBypassesBase(t *testing.T) {
	payload := []byte("mp3 bytes")

	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/story-1/narration.mp3", r.URL.Path)
		_, _ = w.Write(payload)
	}))
	defer cdn.Close()

	// base URL points at a server that must never be hit
	a := newTestAdapter(t, "http://127.0.0.1:1")
	got, err := a.DownloadAsset(context.Background(), cdn.URL+"/audio/story-1/narration.mp3")

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadAsset_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("asset not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.DownloadAsset(context.Background(), "/api/assets/download?path=missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadAsset_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			ErrorCode: models.ErrCodeInvalidParameter,
			Message:   "invalid or expired asset token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.DownloadAsset(context.Background(), "/api/assets/download?path=images%2Fs%2Fp.png&token=expired")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
