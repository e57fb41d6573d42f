package sokuji

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	sokujiservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/application"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	sokujirouter "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/router"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Module represents the sokuji module.
type Module struct {
	EventBus     shared.EventBus
	Service      sokujiservice.Service
	SokujiRouter *sokujirouter.SokujiRouter
	cancelFunc   context.CancelFunc
	logger       *slog.Logger
}

// NewSokujiModule creates a new instance of the sokuji module.
func NewSokujiModule(
	ctx context.Context,
	mogiDB sokujidb.MogiDB,
	bannerDB sokujidb.BannerDB,
	guilds sokujiservice.GuildReader,
	history sokujiservice.ChannelHistory,
	eventBus shared.EventBus,
	router *message.Router,
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) (*Module, error) {
	service := sokujiservice.NewSokujiService(mogiDB, bannerDB, guilds, history, eventBus, logger, metrics, tracer)

	sokujiRouter := sokujirouter.NewSokujiRouter(logger, router, eventBus, tracer, prometheusRegistry)
	if err := sokujiRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure sokuji router: %w", err)
	}

	return &Module{
		EventBus:     eventBus,
		Service:      service,
		SokujiRouter: sokujiRouter,
		logger:       logger,
	}, nil
}

// Run starts the sokuji module and blocks until the context is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "starting sokuji module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.SokujiRouter.Run(ctx); err != nil && ctx.Err() == nil {
		m.logger.ErrorContext(ctx, "sokuji router stopped", slog.Any("error", err))
	}
}

// Close stops the sokuji module and cleans up resources.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.SokujiRouter != nil {
		if err := m.SokujiRouter.Close(); err != nil {
			return fmt.Errorf("error closing sokuji router: %w", err)
		}
	}
	return nil
}
