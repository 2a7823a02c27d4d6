package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/nightlight-app/storysync/internal/adapter"
	"github.com/nightlight-app/storysync/internal/config"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/workers"
)

// App is the runnable sync client: one immediate sync cycle, then an
// optional periodic job until the process is signalled to stop.
type App struct {
	cfg *config.ClientConfig

	orchestrator SyncOrchestrator
	job          SyncJob

	logger *logger.Logger
}

// NewApp wires the client runtime from configuration: gateway adapter,
// local caches, version manager, orchestrator, and the periodic job.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	gateway, err := adapter.NewHTTPGatewayAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create gateway adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	versions := NewVersionManager(cfg.Storage, gateway, logger)
	assets := NewAssetCache(cfg.Storage, storages.AssetCacheRepository, logger)
	stories := NewStoryCache(storages.StoryCacheRepository, logger)
	orchestrator := NewSyncOrchestrator(gateway, versions, stories, assets, cfg.Workers, logger)

	return &App{
		cfg:          cfg,
		orchestrator: orchestrator,
		job:          NewSyncJob(orchestrator, logger),
		logger:       logger,
	}, nil
}

// Run performs one sync cycle and prints its report. When a sync interval is
// configured the periodic job then keeps running until SIGTERM/SIGINT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	stats, err := a.orchestrator.Sync(ctx)
	fmt.Println(RenderSyncStats(stats))
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if a.cfg.Workers.SyncInterval <= 0 {
		return nil
	}

	background := workers.NewWorkers(&periodicSyncWorker{
		job:      a.job,
		ctx:      ctx,
		interval: a.cfg.Workers.SyncInterval,
	})
	background.Run()
	defer a.job.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("sync client shutting down")

	return nil
}

// periodicSyncWorker adapts the sync job to the workers.Worker contract.
type periodicSyncWorker struct {
	job      SyncJob
	ctx      context.Context
	interval time.Duration
}

func (w *periodicSyncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
