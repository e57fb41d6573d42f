package gather

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	gatherservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/application"
	gatherdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/repositories"
	gatherrouter "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/router"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Module represents the gather module.
type Module struct {
	EventBus     shared.EventBus
	Service      gatherservice.Service
	GatherRouter *gatherrouter.GatherRouter
	cancelFunc   context.CancelFunc
	logger       *slog.Logger
}

// NewGatherModule creates a new instance of the gather module.
func NewGatherModule(
	ctx context.Context,
	gatherDB gatherdb.GatherDB,
	guilds gatherservice.GuildReader,
	eventBus shared.EventBus,
	router *message.Router,
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) (*Module, error) {
	service := gatherservice.NewGatherService(gatherDB, guilds, eventBus, logger, metrics, tracer)

	gatherRouter := gatherrouter.NewGatherRouter(logger, router, eventBus, tracer, prometheusRegistry)
	if err := gatherRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure gather router: %w", err)
	}

	return &Module{
		EventBus:     eventBus,
		Service:      service,
		GatherRouter: gatherRouter,
		logger:       logger,
	}, nil
}

// Run starts the gather module and blocks until the context is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "starting gather module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.GatherRouter.Run(ctx); err != nil && ctx.Err() == nil {
		m.logger.ErrorContext(ctx, "gather router stopped", slog.Any("error", err))
	}
}

// Close stops the gather module and cleans up resources.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.GatherRouter != nil {
		if err := m.GatherRouter.Close(); err != nil {
			return fmt.Errorf("error closing gather router: %w", err)
		}
	}
	return nil
}
