package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/mock"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/models"
)

// Catalog reads are thin delegations; these tests pin down that no filtering
// or error rewriting happens between repository and caller.

func newCatalogService(ctrl *gomock.Controller) (StoryService, *mock.MockStoryRepository) {
	stories := mock.NewMockStoryRepository(ctrl)
	storages := &store.Storages{
		StoryRepository:          stories,
		ContentVersionRepository: mock.NewMockContentVersionRepository(ctrl),
		AssetVersionRepository:   mock.NewMockAssetVersionRepository(ctrl),
	}
	return NewStoryService(storages, logger.Nop()), stories
}

func TestStoryService_GetAllStories_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, stories := newCatalogService(ctrl)
	ctx := context.Background()

	want := []models.Story{
		{ID: "moon-bear", Title: "Moon Bear", Category: "animals", Available: true},
		{ID: "brave-turtle", Title: "The Brave Turtle", Category: "animals", Available: true},
	}
	stories.EXPECT().GetAllStories(ctx).Return(want, nil)

	got, err := svc.GetAllStories(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoryService_GetStory_NotFoundPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, stories := newCatalogService(ctrl)
	ctx := context.Background()

	stories.EXPECT().GetStory(ctx, "missing").Return(models.Story{}, store.ErrStoryNotFound)

	_, err := svc.GetStory(ctx, "missing")

	assert.ErrorIs(t, err, store.ErrStoryNotFound)
}

func TestStoryService_GetStoriesByCategory_PassesCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, stories := newCatalogService(ctrl)
	ctx := context.Background()

	stories.EXPECT().GetStoriesByCategory(ctx, "bedtime").Return([]models.Story{{ID: "sleepy-fox"}}, nil)

	got, err := svc.GetStoriesByCategory(ctx, "bedtime")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sleepy-fox", got[0].ID)
}

func TestStoryService_GetAllStories_QueryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, stories := newCatalogService(ctrl)
	ctx := context.Background()

	queryErr := errors.New("connection reset")
	stories.EXPECT().GetAllStories(ctx).Return(nil, queryErr)

	_, err := svc.GetAllStories(ctx)

	assert.ErrorIs(t, err, queryErr)
}
