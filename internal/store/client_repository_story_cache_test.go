package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

func newTestStoryCacheRepo(t *testing.T) (*storyCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &storyCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestUpsertCachedStory_Success(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	story := models.Story{
		ID:    "s1",
		Title: "Title",
		Pages: []models.StoryPage{{ID: "p1", PageNumber: 1, Text: "Hi"}},
	}

	mock.ExpectExec("INSERT INTO cached_stories").
		WithArgs(story.ID, sqlmock.AnyArg(), "abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertStory(context.Background(), story, "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCachedStory_Success(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	payload := []byte(`{"id":"s1","title":"Title","pages":[{"id":"p1","pageNumber":1,"text":"Hi"}]}`)
	mock.ExpectQuery("SELECT payload").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	story, err := repo.GetStory(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if story.ID != "s1" || len(story.Pages) != 1 {
		t.Errorf("cached story not decoded correctly: %+v", story)
	}
}

func TestGetCachedStory_NotFound(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetStory(context.Background(), "missing")
	if !errors.Is(err, ErrCachedStoryNotFound) {
		t.Fatalf("expected ErrCachedStoryNotFound, got %v", err)
	}
}

func TestGetCachedStory_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte("{not json")))

	_, err := repo.GetStory(context.Background(), "s1")
	if !errors.Is(err, ErrEncodingJSON) {
		t.Fatalf("expected ErrEncodingJSON, got %v", err)
	}
}

func TestGetAllCachedStories_Success(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow([]byte(`{"id":"s1"}`)).
		AddRow([]byte(`{"id":"s2"}`))

	mock.ExpectQuery("SELECT payload").WillReturnRows(rows)

	stories, err := repo.GetAllStories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stories) != 2 || stories[1].ID != "s2" {
		t.Fatalf("cached stories not decoded correctly: %+v", stories)
	}
}

func TestDeleteCachedStory_Success(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cached_stories").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteStory(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetChecksums_Success(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "checksum"}).
		AddRow("s1", "abc").
		AddRow("s2", "def")

	mock.ExpectQuery("SELECT id, checksum").WillReturnRows(rows)

	checksums, err := repo.GetChecksums(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checksums) != 2 || checksums["s2"] != "def" {
		t.Errorf("checksum map not built correctly: %+v", checksums)
	}
}

func TestGetChecksums_Empty(t *testing.T) {
	repo, mock, db := newTestStoryCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, checksum").
		WillReturnRows(sqlmock.NewRows([]string{"id", "checksum"}))

	checksums, err := repo.GetChecksums(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checksums == nil || len(checksums) != 0 {
		t.Errorf("expected empty non-nil map, got %+v", checksums)
	}
}
