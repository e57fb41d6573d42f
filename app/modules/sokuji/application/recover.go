package sokujiservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// historyLookback bounds how far back the scanner searches for a
// summary when the store has no record for the channel.
const historyLookback = time.Hour

// getRecord resolves the channel's match. The store is authoritative;
// the channel history is only consulted to migrate matches that predate
// the store, and a recovered match is persisted immediately.
func (s *SokujiService) getRecord(ctx context.Context, channelID shared.ChannelID) (*sokujidb.Mogi, error) {
	record, err := s.MogiDB.Get(ctx, channelID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, sokujidb.ErrNotFound) {
		return nil, err
	}
	if s.history == nil {
		return nil, sokujitypes.ErrMogiNotFound
	}
	return s.recoverFromHistory(ctx, channelID)
}

// getActive is getRecord plus the archive guard shared by mutating
// operations.
func (s *SokujiService) getActive(ctx context.Context, channelID shared.ChannelID) (*sokujidb.Mogi, error) {
	record, err := s.getRecord(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if record.State.IsArchive {
		return nil, sokujitypes.ErrMogiArchived
	}
	return record, nil
}

// recoverFromHistory rebuilds match state from the newest readable
// summary the bot posted in the channel. Plain messages newer than the
// summary may carry a pending track selection; the newest one wins.
func (s *SokujiService) recoverFromHistory(ctx context.Context, channelID shared.ChannelID) (*sokujidb.Mogi, error) {
	since := time.Now().Add(-historyLookback)
	messages, err := s.history.Recent(ctx, channelID, since)
	if err != nil {
		return nil, err
	}

	var loaded *track.Track
	for _, msg := range messages {
		if !msg.Bot {
			if loaded == nil {
				if tr, ok := track.FromNick(strings.TrimSpace(msg.Content)); ok {
					loaded = &tr
				}
			}
			continue
		}
		if msg.Summary == nil || !msg.Summary.IsReadable() {
			continue
		}

		state, err := sokujitypes.FromSummary(*msg.Summary)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unparsable summary",
				slog.String("channel_id", string(channelID)),
				slog.String("message_id", string(msg.ID)),
				slog.Any("error", err),
			)
			continue
		}
		state.LoadedTrack = loaded

		record := &sokujidb.Mogi{
			ChannelID: channelID,
			State:     state,
			MessageID: msg.ID,
		}
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "recovered match from channel history",
			slog.String("channel_id", string(channelID)),
			slog.String("message_id", string(msg.ID)),
		)
		return record, nil
	}

	return nil, sokujitypes.ErrMogiNotFound
}
