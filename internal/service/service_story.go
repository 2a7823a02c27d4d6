package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// storyService implements [StoryService] on top of the Postgres-backed
// repositories. Mutations touch two places: the story row itself and the
// singleton content version document. The version document is always updated
// under SELECT FOR UPDATE so concurrent admin writes serialise on the counter.
type storyService struct {
	stories         store.StoryRepository
	contentVersions store.ContentVersionRepository
	assetVersions   store.AssetVersionRepository
	db              *store.DB

	logger *logger.Logger
}

// NewStoryService constructs a [StoryService].
func NewStoryService(storages *store.Storages, logger *logger.Logger) StoryService {
	return &storyService{
		stories:         storages.StoryRepository,
		contentVersions: storages.ContentVersionRepository,
		assetVersions:   storages.AssetVersionRepository,
		db:              storages.DB,
		logger:          logger,
	}
}

func (s *storyService) GetAllStories(ctx context.Context) ([]models.Story, error) {
	return s.stories.GetAllStories(ctx)
}

func (s *storyService) GetStory(ctx context.Context, storyID string) (models.Story, error) {
	return s.stories.GetStory(ctx, storyID)
}

func (s *storyService) GetStoriesByCategory(ctx context.Context, category string) ([]models.Story, error) {
	return s.stories.GetStoriesByCategory(ctx, category)
}

// GetContentVersion returns the current version document. A store that holds
// no document yet yields the zero-state document instead of an error, so a
// fresh deployment answers version probes with version 1 and an empty map.
func (s *storyService) GetContentVersion(ctx context.Context) (models.ContentVersion, error) {
	version, err := s.contentVersions.GetContentVersion(ctx)
	if err != nil {
		if errors.Is(err, store.ErrVersionNotFound) {
			return models.NewContentVersion(), nil
		}
		return models.ContentVersion{}, err
	}
	return version, nil
}

// DeltaSync computes the minimal transfer set for the client's declared
// state.
//
// The response always carries the FULL server checksum map, so the client can
// replace its snapshot wholesale instead of merging across cycles.
//
// Fast path: a client already at or beyond the server version gets an empty
// delta without any per-story diffing.
func (s *storyService) DeltaSync(ctx context.Context, req models.DeltaSyncRequest) (models.DeltaSyncResponse, error) {
	log := logger.FromContext(ctx)

	if len(req.StoryChecksums) > models.MaxStoryChecksums {
		return models.DeltaSyncResponse{}, ErrTooManyChecksums
	}

	content, err := s.GetContentVersion(ctx)
	if err != nil {
		return models.DeltaSyncResponse{}, err
	}
	assetVersion, err := s.assetVersions.GetAssetVersion(ctx)
	if err != nil && !errors.Is(err, store.ErrVersionNotFound) {
		return models.DeltaSyncResponse{}, err
	}

	resp := models.DeltaSyncResponse{
		ServerVersion:   content.Version,
		AssetVersion:    assetVersion.Version,
		Stories:         []models.Story{},
		DeletedStoryIDs: []string{},
		StoryChecksums:  content.StoryChecksums,
		TotalStories:    content.TotalStories,
		LastUpdated:     content.LastUpdated.UnixMilli(),
	}

	if req.ClientVersion != nil && *req.ClientVersion >= content.Version {
		log.Debug().
			Int64("client_version", *req.ClientVersion).
			Int64("server_version", content.Version).
			Msg("client is up to date, returning empty delta")
		return resp, nil
	}

	changedIDs := make([]string, 0, len(content.StoryChecksums))
	for storyID, checksum := range content.StoryChecksums {
		if declared, ok := req.StoryChecksums[storyID]; !ok || declared != checksum {
			changedIDs = append(changedIDs, storyID)
		}
	}
	sort.Strings(changedIDs)

	deletedIDs := make([]string, 0)
	for storyID := range req.StoryChecksums {
		if _, ok := content.StoryChecksums[storyID]; !ok {
			deletedIDs = append(deletedIDs, storyID)
		}
	}
	sort.Strings(deletedIDs)

	if len(changedIDs) > 0 {
		stories, err := s.stories.GetStoriesByIDs(ctx, changedIDs)
		if err != nil {
			return models.DeltaSyncResponse{}, err
		}
		resp.Stories = stories
	}

	resp.DeletedStoryIDs = deletedIDs
	resp.UpdatedCount = len(resp.Stories)

	log.Info().
		Int("changed", len(resp.Stories)).
		Int("deleted", len(deletedIDs)).
		Int64("server_version", content.Version).
		Msg("computed story delta")

	return resp, nil
}

// SaveStory upserts the story and records its content checksum in the
// version document. Re-saving a story whose checksum is unchanged leaves the
// version counter alone.
func (s *storyService) SaveStory(ctx context.Context, story *models.Story) error {
	if err := s.stories.SaveStory(ctx, story); err != nil {
		return err
	}

	checksum := utils.StoryChecksum(story)
	return s.mutateContentVersion(ctx, func(v *models.ContentVersion) bool {
		return v.UpdateStoryChecksum(story.ID, checksum)
	})
}

// DeleteStory removes the story and evicts its checksum from the version
// document, so clients drop it on their next delta.
func (s *storyService) DeleteStory(ctx context.Context, storyID string) error {
	if err := s.stories.DeleteStory(ctx, storyID); err != nil {
		return err
	}

	return s.mutateContentVersion(ctx, func(v *models.ContentVersion) bool {
		return v.RemoveStoryChecksum(storyID)
	})
}

// mutateContentVersion applies mutate to the locked version document inside
// one transaction. The document is written back when mutate reports a change
// or when the row did not exist yet (first mutation seeds it).
func (s *storyService) mutateContentVersion(ctx context.Context, mutate func(v *models.ContentVersion) bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	seeding := false
	version, err := s.contentVersions.GetContentVersionForUpdate(ctx, tx)
	if err != nil {
		if !errors.Is(err, store.ErrVersionNotFound) {
			return err
		}
		version = models.NewContentVersion()
		seeding = true
	}

	if changed := mutate(&version); !changed && !seeding {
		return tx.Rollback()
	}

	if err := s.contentVersions.SaveContentVersionInTx(ctx, tx, version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrCommitingTransaction, err)
	}

	return nil
}
