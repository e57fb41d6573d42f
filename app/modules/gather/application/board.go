package gatherservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gathertypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/domain/types"
	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
)

// Can raises confirmed hands for the given hours.
func (s *GatherService) Can(ctx context.Context, payload gatherevents.HoursPayload) error {
	return s.participate(ctx, "Can", payload, false)
}

// Tentative raises tentative hands for the given hours.
func (s *GatherService) Tentative(ctx context.Context, payload gatherevents.HoursPayload) error {
	return s.participate(ctx, "Tentative", payload, true)
}

func (s *GatherService) participate(ctx context.Context, operationName string, payload gatherevents.HoursPayload, tentative bool) error {
	return s.serviceWrapper(ctx, operationName, payload.GuildID, func(ctx context.Context) error {
		ja := s.isJA(ctx, payload.GuildID)

		hours, err := gathertypes.ParseHours(payload.Hours)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}

		record, err := s.loadBoard(ctx, payload.GuildID)
		if err != nil {
			return err
		}

		filled, err := record.Board.Participate(hours, userIDs(payload), tentative)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}

		if err := s.GatherDB.Upsert(ctx, record); err != nil {
			return err
		}

		var content strings.Builder
		for _, hour := range filled {
			mentions := make([]string, 0, len(record.Board[hour].Confirmed))
			for _, user := range record.Board[hour].Confirmed {
				mentions = append(mentions, "<@"+user+">")
			}
			fmt.Fprintf(&content, "**%d** %s\n", hour, strings.Join(mentions, ", "))
		}

		if err := s.pushLineup(ctx, payload.ChannelID, content.String(), record.Board); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}
		return nil
	})
}

// Drop lowers the users' hands for the given hours.
func (s *GatherService) Drop(ctx context.Context, payload gatherevents.HoursPayload) error {
	return s.serviceWrapper(ctx, "Drop", payload.GuildID, func(ctx context.Context) error {
		ja := s.isJA(ctx, payload.GuildID)

		hours, err := gathertypes.ParseHours(payload.Hours)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}

		record, err := s.loadBoard(ctx, payload.GuildID)
		if err != nil {
			return err
		}
		record.Board.Drop(hours, userIDs(payload))

		if err := s.GatherDB.Upsert(ctx, record); err != nil {
			return err
		}
		if err := s.pushLineup(ctx, payload.ChannelID, "", record.Board); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}
		return nil
	})
}

// Out removes whole hours from the board.
func (s *GatherService) Out(ctx context.Context, payload gatherevents.HoursPayload) error {
	return s.serviceWrapper(ctx, "Out", payload.GuildID, func(ctx context.Context) error {
		ja := s.isJA(ctx, payload.GuildID)

		hours, err := gathertypes.ParseHours(payload.Hours)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}

		record, err := s.loadBoard(ctx, payload.GuildID)
		if err != nil {
			return err
		}
		record.Board.Out(hours)

		if err := s.GatherDB.Upsert(ctx, record); err != nil {
			return err
		}

		labels := make([]string, len(hours))
		for i, hour := range hours {
			labels[i] = strconv.Itoa(hour)
		}
		content := strings.Join(labels, ", ") + "の募集を削除しました。"

		lineup, err := record.Board.Lineup()
		if err != nil {
			// Removing the last hours leaves nothing to render; the
			// confirmation still goes out.
			if !errors.Is(err, gathertypes.ErrNotGathering) {
				return s.handleUserError(ctx, payload.ChannelID, ja, err)
			}
			lineup = nil
		}
		return s.publish(ctx, gatherevents.LineupSendTopic, gatherevents.LineupSendPayload{
			ChannelID: payload.ChannelID,
			Content:   content,
			Lineup:    lineup,
		})
	})
}

// Clear archives the posted war list and resets the board.
func (s *GatherService) Clear(ctx context.Context, payload gatherevents.ChannelPayload) error {
	return s.serviceWrapper(ctx, "Clear", payload.GuildID, func(ctx context.Context) error {
		ja := s.isJA(ctx, payload.GuildID)

		record, err := s.loadBoard(ctx, payload.GuildID)
		if err != nil {
			return err
		}
		record.Board = gathertypes.Gathering{}

		if err := s.GatherDB.Upsert(ctx, record); err != nil {
			return err
		}
		if err := s.publish(ctx, gatherevents.LineupSendTopic, gatherevents.LineupSendPayload{
			ChannelID: payload.ChannelID,
			Archive:   true,
		}); err != nil {
			return err
		}

		content := "Cleared."
		if ja {
			content = "募集をリセットしました。"
		}
		return s.publish(ctx, gatherevents.ReplyTopic, gatherevents.ReplyPayload{
			ChannelID: payload.ChannelID,
			Content:   content,
		})
	})
}

// Now reposts the current war list.
func (s *GatherService) Now(ctx context.Context, payload gatherevents.ChannelPayload) error {
	return s.serviceWrapper(ctx, "Now", payload.GuildID, func(ctx context.Context) error {
		ja := s.isJA(ctx, payload.GuildID)

		record, err := s.loadBoard(ctx, payload.GuildID)
		if err != nil {
			return err
		}
		if err := s.pushLineup(ctx, payload.ChannelID, "", record.Board); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, ja, err)
		}
		return nil
	})
}

func userIDs(payload gatherevents.HoursPayload) []string {
	users := make([]string, len(payload.UserIDs))
	for i, id := range payload.UserIDs {
		users[i] = string(id)
	}
	return users
}
