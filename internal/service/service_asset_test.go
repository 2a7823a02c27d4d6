package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.AssetObjectStore
// ─────────────────────────────────────────────

type mockAssetObjectStore struct {
	existsFn func(ctx context.Context, path string) (bool, error)
	statFn   func(ctx context.Context, path string) (models.AssetStat, error)
	openFn   func(ctx context.Context, path string) (io.ReadCloser, error)
	putFn    func(ctx context.Context, path string, r io.Reader) (models.AssetStat, error)
	deleteFn func(ctx context.Context, path string) error
}

func (m *mockAssetObjectStore) Exists(ctx context.Context, path string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, path)
	}
	return true, nil
}

func (m *mockAssetObjectStore) Stat(ctx context.Context, path string) (models.AssetStat, error) {
	if m.statFn != nil {
		return m.statFn(ctx, path)
	}
	return models.AssetStat{}, store.ErrAssetNotFound
}

func (m *mockAssetObjectStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(ctx, path)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (m *mockAssetObjectStore) Put(ctx context.Context, path string, r io.Reader) (models.AssetStat, error) {
	if m.putFn != nil {
		return m.putFn(ctx, path, r)
	}
	return models.AssetStat{Path: path}, nil
}

func (m *mockAssetObjectStore) Delete(ctx context.Context, path string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, path)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSignKey = "test-sign-key"

func newTestAssetService(t *testing.T, objects *mockAssetObjectStore, versions *mockAssetVersionRepository, cfg config.Assets) (*assetService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	strategy, err := NewURLStrategy(cfg)
	require.NoError(t, err)

	return &assetService{
		objects:       objects,
		assetVersions: versions,
		db:            &store.DB{DB: db},
		strategy:      strategy,
		cfg:           cfg,
		logger:        logger.Nop(),
	}, mock
}

func directCfg() config.Assets {
	return config.Assets{
		URLStrategy: config.URLStrategyDirect,
		BaseURL:     "http://localhost:8080/assets",
	}
}

func signedCfg() config.Assets {
	return config.Assets{
		URLStrategy:  config.URLStrategySigned,
		SignKey:      testSignKey,
		SignedURLTTL: time.Hour,
	}
}

// ─────────────────────────────────────────────
// SignedURL
// ─────────────────────────────────────────────

func TestSignedURL_InvalidPath(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	_, err := svc.SignedURL(context.Background(), "../../etc/passwd")

	assert.ErrorIs(t, err, store.ErrInvalidAssetPath)
}

func TestSignedURL_MissingObject(t *testing.T) {
	objects := &mockAssetObjectStore{
		existsFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}
	svc, _ := newTestAssetService(t, objects, &mockAssetVersionRepository{}, directCfg())

	_, err := svc.SignedURL(context.Background(), "images/missing.png")

	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}

func TestSignedURL_DirectStrategy(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	entry, err := svc.SignedURL(context.Background(), "images/s1/page1.png")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/assets/images/s1/page1.png", entry.SignedURL)
	assert.Zero(t, entry.ExpiresAt)
}

func TestSignedURL_SignedStrategyEmbedsToken(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, signedCfg())

	entry, err := svc.SignedURL(context.Background(), "audio/s1/narration.mp3")

	require.NoError(t, err)
	assert.Contains(t, entry.SignedURL, "/api/assets/download?path=")
	assert.Contains(t, entry.SignedURL, "token=")
	assert.Greater(t, entry.ExpiresAt, time.Now().UnixMilli())
}

// ─────────────────────────────────────────────
// BatchURLs
// ─────────────────────────────────────────────

func TestBatchURLs_EmptyRequest(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	_, err := svc.BatchURLs(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoPathsProvided)
}

func TestBatchURLs_TooManyPaths(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	paths := make([]string, models.MaxBatchPaths+1)
	for i := range paths {
		paths[i] = "images/s1/page.png"
	}

	_, err := svc.BatchURLs(context.Background(), paths)

	assert.ErrorIs(t, err, ErrTooManyPaths)
}

func TestBatchURLs_PartialFailureNeverAbortsBatch(t *testing.T) {
	objects := &mockAssetObjectStore{
		existsFn: func(_ context.Context, path string) (bool, error) {
			return path != "images/s1/missing.png", nil
		},
	}
	svc, _ := newTestAssetService(t, objects, &mockAssetVersionRepository{}, directCfg())

	resp, err := svc.BatchURLs(context.Background(), []string{
		"images/s1/page1.png",
		"images/s1/missing.png",
		"bad\\path",
		"audio/s1/narration.mp3",
	})

	require.NoError(t, err)
	assert.Len(t, resp.URLs, 2)
	assert.ElementsMatch(t, []string{"images/s1/missing.png", "bad\\path"}, resp.Failed)
}

func TestBatchURLs_AllResolved(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	resp, err := svc.BatchURLs(context.Background(), []string{"images/a.png", "images/b.png"})

	require.NoError(t, err)
	assert.Len(t, resp.URLs, 2)
	assert.Empty(t, resp.Failed)
	assert.NotNil(t, resp.Failed, "failed list must serialise as [] not null")
}

// ─────────────────────────────────────────────
// OpenAsset
// ─────────────────────────────────────────────

func TestOpenAsset_SignedStrategyRequiresValidToken(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, signedCfg())

	_, err := svc.OpenAsset(context.Background(), "images/s1.png", "not-a-token")

	assert.ErrorIs(t, err, ErrInvalidAssetToken)
}

func TestOpenAsset_TokenBoundToOtherPath(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, signedCfg())

	token, err := utils.GenerateAssetToken("images/other.png", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.OpenAsset(context.Background(), "images/s1.png", token)

	assert.ErrorIs(t, err, ErrInvalidAssetToken)
}

func TestOpenAsset_ValidToken(t *testing.T) {
	objects := &mockAssetObjectStore{
		openFn: func(_ context.Context, path string) (io.ReadCloser, error) {
			assert.Equal(t, "images/s1.png", path)
			return io.NopCloser(strings.NewReader("payload")), nil
		},
	}
	svc, _ := newTestAssetService(t, objects, &mockAssetVersionRepository{}, signedCfg())

	token, err := utils.GenerateAssetToken("images/s1.png", time.Hour, testSignKey)
	require.NoError(t, err)

	r, err := svc.OpenAsset(context.Background(), "images/s1.png", token)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestOpenAsset_DirectStrategySkipsToken(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	r, err := svc.OpenAsset(context.Background(), "images/s1.png", "")

	require.NoError(t, err)
	r.Close()
}

// ─────────────────────────────────────────────
// PutAsset / DeleteAsset
// ─────────────────────────────────────────────

func TestPutAsset_BumpsAssetVersion(t *testing.T) {
	objects := &mockAssetObjectStore{
		putFn: func(_ context.Context, path string, _ io.Reader) (models.AssetStat, error) {
			return models.AssetStat{Path: path, Size: 100, Checksum: "new-sum"}, nil
		},
	}

	var savedDoc models.AssetVersion
	versions := &mockAssetVersionRepository{
		getForUpdFn: func(_ context.Context, _ store.Tx) (models.AssetVersion, error) {
			return models.AssetVersion{
				ID:             models.CurrentVersionID,
				Version:        4,
				AssetChecksums: map[string]string{"images/s1.png": "old-sum"},
				TotalAssets:    1,
				TotalSizeBytes: 60,
				LastUpdated:    time.Now().UTC(),
			}, nil
		},
		saveInTxFn: func(_ context.Context, _ store.Tx, v models.AssetVersion) error {
			savedDoc = v
			return nil
		},
	}

	svc, mock := newTestAssetService(t, objects, versions, directCfg())
	mock.ExpectBegin()
	mock.ExpectCommit()

	stat, err := svc.PutAsset(context.Background(), "images/s1.png", strings.NewReader("data"))

	require.NoError(t, err)
	assert.Equal(t, "new-sum", stat.Checksum)
	assert.Equal(t, int64(5), savedDoc.Version)
	assert.Equal(t, "new-sum", savedDoc.AssetChecksums["images/s1.png"])
	// Old object was 0 bytes as far as Stat is concerned (mock returns not
	// found), so the full new size is added.
	assert.Equal(t, int64(160), savedDoc.TotalSizeBytes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPutAsset_IdenticalContentIsNoOp(t *testing.T) {
	objects := &mockAssetObjectStore{
		putFn: func(_ context.Context, path string, _ io.Reader) (models.AssetStat, error) {
			return models.AssetStat{Path: path, Size: 100, Checksum: "same-sum"}, nil
		},
	}

	saveCalls := 0
	versions := &mockAssetVersionRepository{
		getForUpdFn: func(_ context.Context, _ store.Tx) (models.AssetVersion, error) {
			return models.AssetVersion{
				ID:             models.CurrentVersionID,
				Version:        4,
				AssetChecksums: map[string]string{"images/s1.png": "same-sum"},
				TotalAssets:    1,
			}, nil
		},
		saveInTxFn: func(_ context.Context, _ store.Tx, _ models.AssetVersion) error {
			saveCalls++
			return nil
		},
	}

	svc, mock := newTestAssetService(t, objects, versions, directCfg())
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.PutAsset(context.Background(), "images/s1.png", strings.NewReader("data"))

	require.NoError(t, err)
	assert.Zero(t, saveCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAsset_RemovesChecksumAndSize(t *testing.T) {
	objects := &mockAssetObjectStore{
		statFn: func(_ context.Context, path string) (models.AssetStat, error) {
			return models.AssetStat{Path: path, Size: 40, Checksum: "sum"}, nil
		},
	}

	var savedDoc models.AssetVersion
	versions := &mockAssetVersionRepository{
		getForUpdFn: func(_ context.Context, _ store.Tx) (models.AssetVersion, error) {
			return models.AssetVersion{
				ID:             models.CurrentVersionID,
				Version:        4,
				AssetChecksums: map[string]string{"images/s1.png": "sum", "images/s2.png": "other"},
				TotalAssets:    2,
				TotalSizeBytes: 100,
			}, nil
		},
		saveInTxFn: func(_ context.Context, _ store.Tx, v models.AssetVersion) error {
			savedDoc = v
			return nil
		},
	}

	svc, mock := newTestAssetService(t, objects, versions, directCfg())
	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteAsset(context.Background(), "images/s1.png"))

	assert.Equal(t, int64(5), savedDoc.Version)
	assert.NotContains(t, savedDoc.AssetChecksums, "images/s1.png")
	assert.Equal(t, 1, savedDoc.TotalAssets)
	assert.Equal(t, int64(60), savedDoc.TotalSizeBytes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAsset_MissingObject(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	err := svc.DeleteAsset(context.Background(), "images/missing.png")

	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}

// ─────────────────────────────────────────────
// GetAssetVersion
// ─────────────────────────────────────────────

func TestGetAssetVersion_FallsBackToZeroState(t *testing.T) {
	svc, _ := newTestAssetService(t, &mockAssetObjectStore{}, &mockAssetVersionRepository{}, directCfg())

	version, err := svc.GetAssetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), version.Version)
	assert.NotNil(t, version.AssetChecksums)
}
