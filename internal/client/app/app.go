// Package app собирает клиентский движок синхронизации из конфигурации и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gophsync/internal/client/api"
	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/connectivity"
	"github.com/iudanet/gophsync/internal/client/daemon"
	"github.com/iudanet/gophsync/internal/client/interceptor"
	"github.com/iudanet/gophsync/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/gophsync/internal/client/sync"
	"github.com/iudanet/gophsync/internal/config"
)

// App клиентский процесс: хранилище, монитор сети, координатор, перехватчик и демон
type App struct {
	cfg         config.Client
	logger      *slog.Logger
	store       *boltdb.Storage
	monitor     *connectivity.Monitor
	coordinator *clientsync.Coordinator
	transport   *interceptor.Transport
	daemon      *daemon.Server
}

// New связывает компоненты. Файл хранилища не открывается до Run.
func New(cfg config.Client, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	store, err := boltdb.New(cfg.DBPath, boltdb.Options{
		Logger:     logger.With("component", "store"),
		Passphrase: cfg.Passphrase,
	})
	if err != nil {
		return nil, err
	}

	monitor := connectivity.New(connectivity.Options{
		Logger:   logger.With("component", "connectivity"),
		ProbeURL: cfg.EffectiveProbeURL(),
		Debounce: cfg.Debounce,
	})

	apiClient := api.NewClient(cfg.ServerURL,
		api.WithToken(cfg.Token),
		api.WithTimeout(cfg.RequestTimeout),
	)

	resolver := conflict.NewResolver(apiClient, logger.With("component", "conflict"))
	strategy, err := conflict.ParseStrategy(cfg.ConflictStrategy)
	if err != nil {
		return nil, err
	}
	if err := resolver.SetDefaultStrategy(strategy); err != nil {
		return nil, err
	}

	coordinator, err := clientsync.NewCoordinator(clientsync.Options{
		API:           apiClient,
		Queue:         store,
		Mappings:      store,
		Cache:         store,
		Metadata:      store,
		Monitor:       monitor,
		Resolver:      resolver,
		Logger:        logger.With("component", "sync"),
		DrainInterval: cfg.DrainInterval,
		SweepInterval: cfg.SweepInterval,
	})
	if err != nil {
		return nil, err
	}

	transport, err := interceptor.New(interceptor.Options{
		Queue:    coordinator,
		Cache:    store,
		Monitor:  monitor,
		Logger:   logger.With("component", "interceptor"),
		CacheTTL: cfg.CacheTTL,
	})
	if err != nil {
		return nil, err
	}

	d, err := daemon.New(daemon.Options{
		Transport: transport,
		Service:   coordinator,
		Network:   monitor,
		Cache:     store,
		Logger:    logger.With("component", "daemon"),
		Upstream:  cfg.ServerURL,
		Token:     cfg.Token,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		monitor:     monitor,
		coordinator: coordinator,
		transport:   transport,
		daemon:      d,
	}, nil
}

// Handler HTTP обработчик демона (прокси и управляющий API)
func (a *App) Handler() http.Handler {
	return a.daemon.Handler()
}

// Transport перехватчик для встраивания движка в Go приложение без демона
func (a *App) Transport() http.RoundTripper {
	return a.transport
}

// Coordinator координатор синхронизации
func (a *App) Coordinator() *clientsync.Coordinator {
	return a.coordinator
}

// Monitor монитор сети
func (a *App) Monitor() *connectivity.Monitor {
	return a.monitor
}

// Start открывает хранилище и запускает фоновые задачи координатора.
// Второй процесс на том же файле получает storage.ErrStoreLocked.
func (a *App) Start(ctx context.Context) error {
	if err := a.store.Open(ctx); err != nil {
		return fmt.Errorf("failed to open store %s: %w", a.cfg.DBPath, err)
	}
	if err := a.coordinator.Start(ctx); err != nil {
		return err
	}
	return nil
}

// Close останавливает координатор и монитор, затем закрывает хранилище
func (a *App) Close() error {
	a.coordinator.Stop()
	a.monitor.Stop()
	return a.store.Close()
}

// Run запускает движок и демон до отмены ctx
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return errors.Join(err, a.store.Close())
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			a.logger.Error("Failed to close store", "error", closeErr)
		}
	}()

	a.logger.Info("Sync engine started",
		"server", a.cfg.ServerURL,
		"listen", a.cfg.ListenAddr,
		"db", a.cfg.DBPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.monitor.Watch(gctx, a.cfg.ProbeInterval)
		return nil
	})
	g.Go(func() error {
		return a.daemon.Run(gctx, a.cfg.ListenAddr)
	})

	return g.Wait()
}
