package sokujirouter

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

	sokujiservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/application"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujihandlers "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/handlers"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// SokujiRouter wires sokuji event handlers into the shared watermill
// router.
type SokujiRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     shared.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewSokujiRouter creates a new SokujiRouter.
func NewSokujiRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber shared.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *SokujiRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &SokujiRouter{
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
func (r *SokujiRouter) Configure(ctx context.Context, service sokujiservice.Service, appMetrics *shared.Metrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := sokujihandlers.NewSokujiHandlers(service, r.logger, r.tracer, appMetrics)
	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes every inbound topic to its handler.
func (r *SokujiRouter) RegisterHandlers(ctx context.Context, handlers sokujihandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		sokujievents.StartRequest:        handlers.HandleStartRequest,
		sokujievents.EndRequest:          handlers.HandleEndRequest,
		sokujievents.ResumeRequest:       handlers.HandleResumeRequest,
		sokujievents.EditRequest:         handlers.HandleEditRequest,
		sokujievents.TagChangeRequest:    handlers.HandleTagChangeRequest,
		sokujievents.RaceAddRequest:      handlers.HandleRaceAddRequest,
		sokujievents.RaceDeleteRequest:   handlers.HandleRaceDeleteRequest,
		sokujievents.RaceEditRequest:     handlers.HandleRaceEditRequest,
		sokujievents.PenaltyRequest:      handlers.HandlePenaltyRequest,
		sokujievents.PenaltyClearRequest: handlers.HandlePenaltyClearRequest,
		sokujievents.BannerAddRequest:    handlers.HandleBannerAddRequest,
		sokujievents.BannerRemoveRequest: handlers.HandleBannerRemoveRequest,
		sokujievents.ResultRegisterTopic: handlers.HandleResultRegisterRequest,
		sokujievents.ChatLineTopic:       handlers.HandleChatLine,
		sokujievents.MessagePostedTopic:  handlers.HandleMessagePosted,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("sokuji.%s", topic)
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
func (r *SokujiRouter) Run(ctx context.Context) error {
	return r.Router.Run(ctx)
}

// Close stops the router.
func (r *SokujiRouter) Close() error {
	return r.Router.Close()
}
