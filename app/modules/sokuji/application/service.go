package sokujiservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// SokujiService implements the Service interface.
type SokujiService struct {
	MogiDB   sokujidb.MogiDB
	BannerDB sokujidb.BannerDB
	guilds   GuildReader
	history  ChannelHistory
	eventBus shared.EventBus
	logger   *slog.Logger
	metrics  *shared.Metrics
	tracer   trace.Tracer
}

// NewSokujiService creates a new SokujiService. history may be nil when
// no gateway-side scanner is wired; recovery then relies on the store
// alone.
func NewSokujiService(
	mogiDB sokujidb.MogiDB,
	bannerDB sokujidb.BannerDB,
	guilds GuildReader,
	history ChannelHistory,
	eventBus shared.EventBus,
	logger *slog.Logger,
	metrics *shared.Metrics,
	tracer trace.Tracer,
) *SokujiService {
	return &SokujiService{
		MogiDB:   mogiDB,
		BannerDB: bannerDB,
		guilds:   guilds,
		history:  history,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// serviceWrapper wraps a service operation with tracing, logging, and
// panic recovery.
func (s *SokujiService) serviceWrapper(ctx context.Context, operationName string, channelID shared.ChannelID, op func(ctx context.Context) error) (err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("channel_id", string(channelID)),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "recovered from panic",
				slog.String("operation", operationName),
				slog.String("channel_id", string(channelID)),
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
			slog.String("channel_id", string(channelID)),
			slog.Any("error", wrappedErr),
		)
		span.RecordError(wrappedErr)
		return wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed",
		slog.String("operation", operationName),
		slog.String("channel_id", string(channelID)),
	)
	return nil
}

// publish marshals a payload and puts it on the bus.
func (s *SokujiService) publish(ctx context.Context, topic string, payload any) error {
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

// reply sends a localized user-facing message to the channel. User
// errors are answered, not propagated; a failed reply still is an
// infrastructure error.
func (s *SokujiService) reply(ctx context.Context, channelID shared.ChannelID, ja bool, userErr error) error {
	return s.publish(ctx, sokujievents.ReplyTopic, sokujievents.ReplyPayload{
		ChannelID: channelID,
		Content:   sokujitypes.Localize(userErr, ja),
	})
}

// handleUserError answers user errors in-channel and propagates
// everything else unchanged.
func (s *SokujiService) handleUserError(ctx context.Context, channelID shared.ChannelID, ja bool, err error) error {
	if sokujitypes.IsUserError(err) {
		return s.reply(ctx, channelID, ja, err)
	}
	return err
}

// pushState republishes the summary for the record and fans the score
// payload out to banner subscribers. fresh posts a new message and
// deletes the superseded one so a stale summary cannot be re-read as
// current; otherwise the posted message is edited in place.
func (s *SokujiService) pushState(ctx context.Context, record *sokujidb.Mogi, fresh bool) error {
	state := record.State
	summary := state.Summary()
	attach := len(state.Races) == sokujitypes.MaxRaces

	if fresh || record.MessageID == "" {
		if err := s.publish(ctx, sokujievents.MessageSendTopic, sokujievents.MessageSendPayload{
			ChannelID:       record.ChannelID,
			Summary:         summary,
			DeleteMessageID: record.MessageID,
			AttachResult:    attach,
		}); err != nil {
			return err
		}
	} else {
		if err := s.publish(ctx, sokujievents.MessageRefreshTopic, sokujievents.MessageRefreshPayload{
			ChannelID:    record.ChannelID,
			MessageID:    record.MessageID,
			Summary:      summary,
			AttachResult: attach,
		}); err != nil {
			return err
		}
	}

	if err := s.publish(ctx, sokujievents.UpdatedTopic, sokujievents.ChannelPayload{ChannelID: record.ChannelID}); err != nil {
		return err
	}

	s.pushLive(ctx, state)
	return nil
}

// pushLive writes the latest score payload for every banner subscriber.
// Delivery failures are logged per user and do not fail the operation.
func (s *SokujiService) pushLive(ctx context.Context, state *sokujitypes.Mogi) {
	if len(state.BannerUsers) == 0 {
		return
	}

	win := 0
	if state.Winning() {
		win = 1
	}
	payload := sokujievents.LivePayload{
		Teams:  state.Tags,
		Left:   state.Left(),
		Win:    win,
		Dif:    fmt.Sprintf("%+d", state.Diff()),
		Scores: state.Total(),
	}

	for _, user := range state.BannerUsers {
		if err := s.BannerDB.Put(ctx, shared.DiscordID(user), payload); err != nil {
			s.logger.WarnContext(ctx, "live push failed",
				slog.String("user_id", user),
				slog.Any("error", err),
			)
			continue
		}
		s.metrics.LivePushes.Inc()
	}
}
