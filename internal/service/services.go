package service

import (
	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
)

type Services struct {
	StoryService StoryService
	AssetService AssetService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	assetService, err := NewAssetService(storages, cfg.Storage.Assets, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		StoryService: NewStoryService(storages, logger),
		AssetService: assetService,
	}, nil
}
