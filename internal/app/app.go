package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/propdesk-backend/internal/data/db"
	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/http"
	"github.com/yungbote/propdesk-backend/internal/observability"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/platform/payments"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Repos    Repos
	Clients  Clients
	Services Services
	Server   *http.Server

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode, logger.WithRedaction(cfg.LogRedaction, cfg.LogHashSalt))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics, err := observability.NewMetrics()
	if err != nil {
		log.Warn("Metrics init failed (continuing without)", "error", err)
		metrics = nil
	}

	store, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := store.AutoMigrateAll(); err != nil {
			_ = store.Close()
			log.Sync()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("init clients: %w", err)
	}

	processor := payments.NewLedger(store.DB(), log)
	reposet := wireRepos(store.DB(), log, processor)
	serviceset := wireServices(store.DB(), log, reposet, clients, metrics)
	handlerset := wireHandlers(log, store, serviceset)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           store,
		Repos:        reposet,
		Clients:      clients,
		Services:     serviceset,
		Server:       server,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down within
// Cfg.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	if a.Clients.ChangeBus != nil && a.Cfg.RedisLogChanges {
		changeLog := a.Log.With("component", "change_feed")
		if err := a.Clients.ChangeBus.StartForwarder(gctx, func(ev entity.ChangeEvent) {
			changeLog.Info("Change received", "kind", ev.Kind, "op", string(ev.Op), "id", ev.ID)
		}); err != nil {
			a.Log.Warn("Change feed subscriber failed to start", "error", err)
		}
	}

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Cfg.HTTPAddr)
		return a.Server.Run(a.Cfg.HTTPAddr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		a.Log.Info("Shutting down server")
		return a.Server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && a.Log != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		_ = a.otelShutdown(ctx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
