package sokujihandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	sokujiservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/application"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// SokujiHandlers handles sokuji-related events.
type SokujiHandlers struct {
	service        sokujiservice.Service
	logger         *slog.Logger
	tracer         trace.Tracer
	metrics        *shared.Metrics
	handlerWrapper func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc
}

// NewSokujiHandlers creates a new SokujiHandlers.
func NewSokujiHandlers(
	service sokujiservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics *shared.Metrics,
) Handlers {
	return &SokujiHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		handlerWrapper: func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc {
			return handlerWrapper(handlerName, unmarshalTo, handlerFunc, logger, metrics, tracer)
		},
	}
}

// handlerWrapper handles common tracing, logging, and metrics for
// handlers.
func handlerWrapper(
	handlerName string,
	unmarshalTo interface{},
	handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error),
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_id", msg.UUID),
		))
		defer span.End()

		if unmarshalTo != nil {
			if err := json.Unmarshal(msg.Payload, unmarshalTo); err != nil {
				logger.ErrorContext(ctx, "failed to unmarshal payload",
					slog.String("handler", handlerName),
					slog.String("message_id", msg.UUID),
					slog.Any("error", err),
				)
				metrics.HandlerFailure.WithLabelValues(handlerName).Inc()
				return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
			}
		}

		result, err := handlerFunc(ctx, msg, unmarshalTo)
		if err != nil {
			logger.ErrorContext(ctx, "error in "+handlerName,
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			metrics.HandlerFailure.WithLabelValues(handlerName).Inc()
			span.RecordError(err)
			return nil, err
		}

		metrics.HandlerSuccess.WithLabelValues(handlerName).Inc()
		return result, nil
	}
}
