package results

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	resultsrouter "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/router"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Module represents the results module.
type Module struct {
	EventBus      shared.EventBus
	Service       resultsservice.Service
	ResultsRouter *resultsrouter.ResultsRouter
	cancelFunc    context.CancelFunc
	logger        *slog.Logger
}

// NewResultsModule creates a new instance of the results module.
func NewResultsModule(
	ctx context.Context,
	resultDB resultsdb.ResultDB,
	eventBus shared.EventBus,
	router *message.Router,
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := resultsservice.NewResultsService(resultDB, logger, tracer)

	resultsRouter := resultsrouter.NewResultsRouter(logger, router, eventBus, tracer)
	if err := resultsRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure results router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		Service:       service,
		ResultsRouter: resultsRouter,
		logger:        logger,
	}, nil
}

// Run starts the results module and blocks until the context is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "starting results module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.ResultsRouter.Router.Run(ctx); err != nil && ctx.Err() == nil {
		m.logger.ErrorContext(ctx, "results router stopped", slog.Any("error", err))
	}
}

// Close stops the results module and cleans up resources.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.ResultsRouter != nil {
		if err := m.ResultsRouter.Router.Close(); err != nil {
			return fmt.Errorf("error closing results router: %w", err)
		}
	}
	return nil
}
