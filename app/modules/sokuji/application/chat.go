package sokujiservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"
)

// HandleChatLine inspects an ordinary chat message for implicit match
// input: a course nickname arms the next race's track, "back" undoes
// the newest race, and anything that parses as rank shorthand records
// one. Every other line is somebody talking, so misses stay silent.
func (s *SokujiService) HandleChatLine(ctx context.Context, payload sokujievents.ChatLinePayload) error {
	return s.serviceWrapper(ctx, "HandleChatLine", payload.ChannelID, func(ctx context.Context) error {
		if payload.Bot {
			return nil
		}
		content := strings.TrimSpace(payload.Content)
		if content == "" {
			return nil
		}

		record, err := s.getRecord(ctx, payload.ChannelID)
		if err != nil {
			if sokujitypes.IsUserError(err) {
				return nil
			}
			return err
		}
		if record.State.IsArchive {
			return nil
		}

		if tr, ok := track.FromNick(content); ok {
			record.State.LoadedTrack = &tr
			return s.MogiDB.Upsert(ctx, record)
		}

		if strings.EqualFold(content, "back") {
			if err := record.State.Back(len(record.State.Races)); err != nil {
				return nil
			}
			s.metrics.RaceOperations.WithLabelValues("back").Inc()
		} else {
			normalized, ok := sokujitypes.ValidateText(content)
			if !ok {
				return nil
			}
			if err := record.State.AddRace(normalized, "", 0); err != nil {
				if sokujitypes.IsUserError(err) {
					s.logger.DebugContext(ctx, "chat line did not record a race",
						slog.String("channel_id", string(payload.ChannelID)),
						slog.Any("error", err),
					)
					return nil
				}
				return err
			}
			s.metrics.RaceOperations.WithLabelValues("add").Inc()
		}

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// HandleMessagePosted records the id of the summary message the
// gateway just posted so later refreshes can address it.
func (s *SokujiService) HandleMessagePosted(ctx context.Context, payload sokujievents.MessagePostedPayload) error {
	return s.serviceWrapper(ctx, "HandleMessagePosted", payload.ChannelID, func(ctx context.Context) error {
		err := s.MogiDB.SetMessageID(ctx, payload.ChannelID, payload.MessageID)
		if errors.Is(err, sokujidb.ErrNotFound) {
			return nil
		}
		return err
	})
}
