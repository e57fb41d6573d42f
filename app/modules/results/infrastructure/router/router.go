package resultsrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"go.opentelemetry.io/otel/trace"

	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	resultshandlers "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/handlers"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ResultsRouter wires result handlers into the shared watermill router.
type ResultsRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber shared.EventBus
	tracer     trace.Tracer
}

// NewResultsRouter creates a new ResultsRouter.
func NewResultsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber shared.EventBus,
	tracer trace.Tracer,
) *ResultsRouter {
	return &ResultsRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		tracer:     tracer,
	}
}

// Configure registers the module's handlers on the router.
func (r *ResultsRouter) Configure(ctx context.Context, service resultsservice.Service, appMetrics *shared.Metrics) error {
	handlers := resultshandlers.NewResultsHandlers(service, r.logger, r.tracer, appMetrics)

	handlerName := fmt.Sprintf("results.%s", sokujievents.ResultRegisteredTopic)
	r.Router.AddNoPublisherHandler(
		handlerName,
		sokujievents.ResultRegisteredTopic,
		r.subscriber,
		func(msg *message.Message) error {
			_, err := handlers.HandleResultRegistered(msg)
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
	return nil
}
