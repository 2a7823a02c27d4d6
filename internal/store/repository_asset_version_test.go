package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

func newTestAssetVersionRepo(t *testing.T) (*assetVersionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &assetVersionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var assetVersionColumns = []string{
	"version", "asset_checksums", "total_assets", "total_size_bytes", "last_updated",
}

func TestGetAssetVersion_Success(t *testing.T) {
	repo, mock, db := newTestAssetVersionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(assetVersionColumns).
		AddRow(int64(12), []byte(`{"images/s1/p1.png":"abc"}`), 1, int64(2048), time.Now())

	mock.ExpectQuery("SELECT version, asset_checksums").
		WithArgs(models.CurrentVersionID).
		WillReturnRows(rows)

	version, err := repo.GetAssetVersion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version.Version != 12 || version.TotalSizeBytes != 2048 {
		t.Errorf("asset version not decoded correctly: %+v", version)
	}
	if version.AssetChecksums["images/s1/p1.png"] != "abc" {
		t.Errorf("checksum map not decoded correctly: %+v", version.AssetChecksums)
	}
}

func TestGetAssetVersion_NotFound(t *testing.T) {
	repo, mock, db := newTestAssetVersionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT version, asset_checksums").
		WithArgs(models.CurrentVersionID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAssetVersion(context.Background())
	if !errors.Is(err, ErrVersionNotFound) {
		t.Fatalf("expected ErrVersionNotFound, got %v", err)
	}
}

func TestSaveAssetVersion_Success(t *testing.T) {
	repo, mock, db := newTestAssetVersionRepo(t)
	defer db.Close()

	version := models.AssetVersion{
		ID:             models.CurrentVersionID,
		Version:        2,
		AssetChecksums: map[string]string{"audio/s1/narration.mp3": "def"},
		TotalAssets:    1,
		TotalSizeBytes: 4096,
		LastUpdated:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO asset_versions").
		WithArgs(models.CurrentVersionID, version.Version, sqlmock.AnyArg(),
			version.TotalAssets, version.TotalSizeBytes, version.LastUpdated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveAssetVersion(context.Background(), version); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveAssetVersion_ExecError(t *testing.T) {
	repo, mock, db := newTestAssetVersionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO asset_versions").
		WillReturnError(errors.New("disk full"))

	err := repo.SaveAssetVersion(context.Background(), models.AssetVersion{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestAssetVersion_ForUpdateLocksRow(t *testing.T) {
	repo, mock, db := newTestAssetVersionRepo(t)
	defer db.Close()

	mock.ExpectBegin()

	rows := sqlmock.NewRows(assetVersionColumns).
		AddRow(int64(9), []byte(`{}`), 0, int64(0), time.Now())
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.CurrentVersionID).
		WillReturnRows(rows)

	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	version, err := repo.GetAssetVersionForUpdate(ctx, tx)
	if err != nil {
		t.Fatalf("unexpected error locking version row: %v", err)
	}
	if version.Version != 9 {
		t.Errorf("expected locked version 9, got %d", version.Version)
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("unexpected rollback error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
