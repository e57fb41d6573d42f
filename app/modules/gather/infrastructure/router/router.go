package gatherrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	gatherservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/application"
	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
	gatherhandlers "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/handlers"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// GatherRouter wires gather event handlers into the shared watermill
// router.
type GatherRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     shared.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewGatherRouter creates a new GatherRouter.
func NewGatherRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber shared.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *GatherRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &GatherRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure adds middleware and registers the module's handlers on the
// router.
func (r *GatherRouter) Configure(ctx context.Context, service gatherservice.Service, appMetrics *shared.Metrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := gatherhandlers.NewGatherHandlers(service, r.logger, r.tracer, appMetrics)
	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes every inbound topic to its handler.
func (r *GatherRouter) RegisterHandlers(ctx context.Context, handlers gatherhandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		gatherevents.CanTopic:       handlers.HandleCanRequest,
		gatherevents.TentativeTopic: handlers.HandleTentativeRequest,
		gatherevents.DropTopic:      handlers.HandleDropRequest,
		gatherevents.OutTopic:       handlers.HandleOutRequest,
		gatherevents.ClearTopic:     handlers.HandleClearRequest,
		gatherevents.NowTopic:       handlers.HandleNowRequest,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("gather.%s", topic)
		r.Router.AddNoPublisherHandler(
			handlerName,
			topic,
			r.subscriber,
			func(msg *message.Message) error {
				_, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "error processing message",
						slog.String("handler", handlerName),
						slog.String("message_id", msg.UUID),
						slog.Any("error", err),
					)
				}
				return err
			},
		)
	}
	return nil
}

// Run starts the router and blocks until the context is done.
func (r *GatherRouter) Run(ctx context.Context) error {
	return r.Router.Run(ctx)
}

// Close stops the router.
func (r *GatherRouter) Close() error {
	return r.Router.Close()
}
