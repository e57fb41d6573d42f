package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"

	"github.com/Yumax-panda/MK8DX-discordbot/api"
	"github.com/Yumax-panda/MK8DX-discordbot/app/eventbus"
	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather"
	gatherdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/repositories"
	guildservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/application"
	guilddb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/results"
	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
	"github.com/Yumax-panda/MK8DX-discordbot/config"
)

// App wires the modules, the event bus, the database, and the HTTP
// API together.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Metrics  *shared.Metrics
	Registry *prometheus.Registry

	DB       *bun.DB
	EventBus shared.EventBus

	GuildService  guildservice.Service
	SokujiModule  *sokuji.Module
	GatherModule  *gather.Module
	ResultsModule *results.Module
	APIServer     *api.Server
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	metrics := shared.NewMetrics(registry)
	tracer := otel.Tracer("mk8dx-discordbot")

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	newRouter := func() (*message.Router, error) {
		return message.NewRouter(message.RouterConfig{}, watermillLogger)
	}

	mogiDB := &sokujidb.MogiDBImpl{DB: db}
	bannerDB := &sokujidb.BannerDBImpl{DB: db}
	gatherDB := &gatherdb.GatherDBImpl{DB: db}
	resultDB := &resultsdb.ResultDBImpl{DB: db}
	guildDB := &guilddb.GuildDBImpl{DB: db}

	guildService := guildservice.NewGuildService(guildDB, logger, tracer)

	sokujiRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create sokuji router: %w", err)
	}
	// No ChannelHistory yet: the gateway does not expose a history
	// scanner, so recovery for channels missing a store row stays off
	// until one is wired in here.
	sokujiModule, err := sokuji.NewSokujiModule(ctx, mogiDB, bannerDB, guildService, nil, bus, sokujiRouter, logger, metrics, tracer, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sokuji module: %w", err)
	}

	gatherRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create gather router: %w", err)
	}
	gatherModule, err := gather.NewGatherModule(ctx, gatherDB, guildService, bus, gatherRouter, logger, metrics, tracer, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gather module: %w", err)
	}

	resultsRouter, err := newRouter()
	if err != nil {
		return nil, fmt.Errorf("failed to create results router: %w", err)
	}
	resultsModule, err := results.NewResultsModule(ctx, resultDB, bus, resultsRouter, logger, metrics, tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize results module: %w", err)
	}

	apiServer := api.NewServer(cfg.API, logger, bannerDB, resultsModule.Service, guildService, registry)

	return &App{
		Cfg:           cfg,
		Logger:        logger,
		Metrics:       metrics,
		Registry:      registry,
		DB:            db,
		EventBus:      bus,
		GuildService:  guildService,
		SokujiModule:  sokujiModule,
		GatherModule:  gatherModule,
		ResultsModule: resultsModule,
		APIServer:     apiServer,
	}, nil
}

// Run starts every module and the HTTP API, then blocks until the
// context is canceled.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	wg.Add(3)
	go a.SokujiModule.Run(ctx, &wg)
	go a.GatherModule.Run(ctx, &wg)
	go a.ResultsModule.Run(ctx, &wg)

	apiErr := make(chan error, 1)
	go func() {
		apiErr <- a.APIServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-apiErr:
		if err != nil {
			a.Logger.Error("HTTP API stopped", slog.Any("error", err))
		}
	}

	wg.Wait()
	return nil
}

// Close shuts down the application in reverse dependency order.
func (a *App) Close(ctx context.Context) error {
	if a.APIServer != nil {
		if err := a.APIServer.Shutdown(ctx); err != nil {
			a.Logger.Error("error shutting down HTTP API", slog.Any("error", err))
		}
	}
	for _, closer := range []interface{ Close() error }{
		a.SokujiModule, a.GatherModule, a.ResultsModule,
	} {
		if err := closer.Close(); err != nil {
			a.Logger.Error("error closing module", slog.Any("error", err))
		}
	}
	if a.EventBus != nil {
		if err := a.EventBus.Close(); err != nil {
			a.Logger.Error("error closing event bus", slog.Any("error", err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("error closing database: %w", err)
		}
	}
	return nil
}
