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

func newTestContentVersionRepo(t *testing.T) (*contentVersionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contentVersionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var contentVersionColumns = []string{"version", "story_checksums", "total_stories", "last_updated"}

func TestGetContentVersion_Success(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(contentVersionColumns).
		AddRow(int64(7), []byte(`{"s1":"abc","s2":"def"}`), 2, time.Now())

	mock.ExpectQuery("SELECT version, story_checksums").
		WithArgs(models.CurrentVersionID).
		WillReturnRows(rows)

	version, err := repo.GetContentVersion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version.Version != 7 {
		t.Errorf("expected version 7, got %d", version.Version)
	}
	if version.ID != models.CurrentVersionID {
		t.Errorf("expected singleton ID %q, got %q", models.CurrentVersionID, version.ID)
	}
	if len(version.StoryChecksums) != 2 || version.StoryChecksums["s1"] != "abc" {
		t.Errorf("checksum map not decoded correctly: %+v", version.StoryChecksums)
	}
}

func TestGetContentVersion_NotFound(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT version, story_checksums").
		WithArgs(models.CurrentVersionID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetContentVersion(context.Background())
	if !errors.Is(err, ErrVersionNotFound) {
		t.Fatalf("expected ErrVersionNotFound, got %v", err)
	}
}

func TestGetContentVersion_NullChecksumMap(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(contentVersionColumns).
		AddRow(int64(0), []byte(`null`), 0, time.Time{})

	mock.ExpectQuery("SELECT version, story_checksums").
		WithArgs(models.CurrentVersionID).
		WillReturnRows(rows)

	version, err := repo.GetContentVersion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version.StoryChecksums == nil {
		t.Error("expected non-nil checksum map for null JSONB value")
	}
}

func TestSaveContentVersion_Success(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	version := models.ContentVersion{
		ID:             models.CurrentVersionID,
		Version:        3,
		StoryChecksums: map[string]string{"s1": "abc"},
		TotalStories:   1,
		LastUpdated:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO content_versions").
		WithArgs(models.CurrentVersionID, version.Version, sqlmock.AnyArg(),
			version.TotalStories, version.LastUpdated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveContentVersion(context.Background(), version); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveContentVersion_ExecError(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO content_versions").
		WillReturnError(errors.New("connection reset"))

	err := repo.SaveContentVersion(context.Background(), models.ContentVersion{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

// TestContentVersion_ForUpdateRoundTrip simulates the service-layer mutation
// flow: begin, lock the version row, write the bumped document back, commit.
func TestContentVersion_ForUpdateRoundTrip(t *testing.T) {
	repo, mock, db := newTestContentVersionRepo(t)
	defer db.Close()

	mock.ExpectBegin()

	rows := sqlmock.NewRows(contentVersionColumns).
		AddRow(int64(4), []byte(`{"s1":"abc"}`), 1, time.Now())
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(models.CurrentVersionID).
		WillReturnRows(rows)

	mock.ExpectExec("INSERT INTO content_versions").
		WithArgs(models.CurrentVersionID, int64(5), sqlmock.AnyArg(), 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	version, err := repo.GetContentVersionForUpdate(ctx, tx)
	if err != nil {
		t.Fatalf("unexpected error locking version row: %v", err)
	}
	if version.Version != 4 {
		t.Fatalf("expected locked version 4, got %d", version.Version)
	}

	version.UpdateStoryChecksum("s2", "def")
	if err := repo.SaveContentVersionInTx(ctx, tx, version); err != nil {
		t.Fatalf("unexpected error saving in tx: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
