package resultshandlers

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Handlers is the set of event handlers registered by the results
// router.
type Handlers interface {
	HandleResultRegistered(msg *message.Message) ([]*message.Message, error)
}

// ResultsHandlers handles result events.
type ResultsHandlers struct {
	service resultsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *shared.Metrics
}

// NewResultsHandlers creates a new ResultsHandlers.
func NewResultsHandlers(
	service resultsservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics *shared.Metrics,
) Handlers {
	return &ResultsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
	}
}

// HandleResultRegistered stores a validated summary as a durable
// result.
func (h *ResultsHandlers) HandleResultRegistered(msg *message.Message) ([]*message.Message, error) {
	const handlerName = "HandleResultRegistered"

	ctx, span := h.tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
		attribute.String("handler", handlerName),
		attribute.String("message_id", msg.UUID),
	))
	defer span.End()

	var payload sokujievents.ResultRegisterPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.metrics.HandlerFailure.WithLabelValues(handlerName).Inc()
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, inserted, err := h.service.RegisterFromSummary(ctx, payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register result",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		h.metrics.HandlerFailure.WithLabelValues(handlerName).Inc()
		span.RecordError(err)
		return nil, err
	}

	if !inserted {
		h.logger.InfoContext(ctx, "result already registered",
			slog.String("guild_id", string(payload.GuildID)),
			slog.String("enemy", result.Enemy),
		)
	}
	h.metrics.HandlerSuccess.WithLabelValues(handlerName).Inc()
	return nil, nil
}
