package gatherservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	gathertypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/domain/types"
	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
	gatherdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GatherService implements the Service interface.
type GatherService struct {
	GatherDB gatherdb.GatherDB
	guilds   GuildReader
	eventBus shared.EventBus
	logger   *slog.Logger
	metrics  *shared.Metrics
	tracer   trace.Tracer
}

// NewGatherService creates a new GatherService.
func NewGatherService(
	gatherDB gatherdb.GatherDB,
	guilds GuildReader,
	eventBus shared.EventBus,
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
) *GatherService {
	return &GatherService{
		GatherDB: gatherDB,
		guilds:   guilds,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// serviceWrapper wraps a service operation with tracing, logging, and
// panic recovery.
func (s *GatherService) serviceWrapper(ctx context.Context, operationName string, guildID shared.GuildID, op func(ctx context.Context) error) (err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "recovered from panic",
				slog.String("operation", operationName),
				slog.String("guild_id", string(guildID)),
				slog.Any("error", err),
			)
			span.RecordError(err)
		}
	}()

	err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "operation failed",
			slog.String("operation", operationName),
			slog.String("guild_id", string(guildID)),
			slog.Any("error", wrappedErr),
		)
		span.RecordError(wrappedErr)
		return wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed",
		slog.String("operation", operationName),
		slog.String("guild_id", string(guildID)),
	)
	return nil
}

// publish marshals a payload and puts it on the bus.
func (s *GatherService) publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	msg := message.NewMessage(shared.NewUUID(), data)
	if err := s.eventBus.Publish(ctx, topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// reply sends a localized user-facing message to the channel.
func (s *GatherService) reply(ctx context.Context, channelID shared.ChannelID, ja bool, userErr error) error {
	return s.publish(ctx, gatherevents.ReplyTopic, gatherevents.ReplyPayload{
		ChannelID: channelID,
		Content:   gathertypes.Localize(userErr, ja),
	})
}

// handleUserError answers user errors in-channel and propagates
// everything else unchanged.
func (s *GatherService) handleUserError(ctx context.Context, channelID shared.ChannelID, ja bool, err error) error {
	if gathertypes.IsUserError(err) {
		return s.reply(ctx, channelID, ja, err)
	}
	return err
}

// isJA resolves the guild locale, defaulting to Japanese when the
// lookup fails.
func (s *GatherService) isJA(ctx context.Context, guildID shared.GuildID) bool {
	ja, err := s.guilds.IsJA(ctx, guildID)
	if err != nil {
		s.logger.WarnContext(ctx, "locale lookup failed",
			slog.String("guild_id", string(guildID)),
			slog.Any("error", err),
		)
		return true
	}
	return ja
}

// loadBoard reads the guild's board, starting an empty one when none
// is stored yet.
func (s *GatherService) loadBoard(ctx context.Context, guildID shared.GuildID) (*gatherdb.GatherState, error) {
	record, err := s.GatherDB.Get(ctx, guildID)
	if err != nil {
		if errors.Is(err, gatherdb.ErrNotFound) {
			return &gatherdb.GatherState{
				GuildID: guildID,
				Board:   gathertypes.Gathering{},
			}, nil
		}
		return nil, err
	}
	if record.Board == nil {
		record.Board = gathertypes.Gathering{}
	}
	return record, nil
}

// pushLineup posts a fresh war list, superseding any previous post in
// the channel.
func (s *GatherService) pushLineup(ctx context.Context, channelID shared.ChannelID, content string, board gathertypes.Gathering) error {
	lineup, err := board.Lineup()
	if err != nil {
		return err
	}
	return s.publish(ctx, gatherevents.LineupSendTopic, gatherevents.LineupSendPayload{
		ChannelID: channelID,
		Content:   content,
		Lineup:    lineup,
	})
}
