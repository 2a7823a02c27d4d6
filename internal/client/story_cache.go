package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

type storyCache struct {
	stories store.StoryCacheRepository

	logger *logger.Logger
}

// NewStoryCache builds a [StoryCache] over the given repository.
func NewStoryCache(stories store.StoryCacheRepository, logger *logger.Logger) StoryCache {
	return &storyCache{stories: stories, logger: logger}
}

// ApplyDelta implements [StoryCache]. Deletions of stories the cache never
// held are counted anyway: the server said they are gone, and the end state
// is the same.
func (c *storyCache) ApplyDelta(ctx context.Context, stories []models.Story, checksums map[string]string, deletedIDs []string) (int, int, error) {
	for _, story := range stories {
		checksum, ok := checksums[story.ID]
		if !ok {
			checksum = utils.StoryChecksum(&story)
		}
		if err := c.stories.UpsertStory(ctx, story, checksum); err != nil {
			return 0, 0, fmt.Errorf("upsert story %s: %w", story.ID, err)
		}
	}

	for _, storyID := range deletedIDs {
		if err := c.stories.DeleteStory(ctx, storyID); err != nil && !errors.Is(err, store.ErrCachedStoryNotFound) {
			return 0, 0, fmt.Errorf("evict story %s: %w", storyID, err)
		}
	}

	return len(stories), len(deletedIDs), nil
}

// Checksums implements [StoryCache].
func (c *storyCache) Checksums(ctx context.Context) (map[string]string, error) {
	checksums, err := c.stories.GetChecksums(ctx)
	if err != nil {
		return nil, fmt.Errorf("load story checksums: %w", err)
	}
	if checksums == nil {
		checksums = map[string]string{}
	}
	return checksums, nil
}

// Stories implements [StoryCache].
func (c *storyCache) Stories(ctx context.Context) ([]models.Story, error) {
	return c.stories.GetAllStories(ctx)
}

// AssetPaths implements [StoryCache].
func (c *storyCache) AssetPaths(ctx context.Context) ([]string, error) {
	stories, err := c.stories.GetAllStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cached stories: %w", err)
	}

	seen := make(map[string]struct{})
	paths := make([]string, 0, len(stories)*4)
	for _, story := range stories {
		for _, path := range story.AssetPaths() {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}

	return paths, nil
}
