package sokujiservice

import (
	"context"
	"fmt"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
)

// Start opens a new match in the channel, replacing any previous one.
// The home tag comes from the guild's registered team settings.
func (s *SokujiService) Start(ctx context.Context, payload sokujievents.StartPayload) error {
	return s.serviceWrapper(ctx, "Start", payload.ChannelID, func(ctx context.Context) error {
		homeTag, err := s.guilds.TeamTag(ctx, payload.GuildID)
		if err != nil {
			return fmt.Errorf("failed to resolve team tag: %w", err)
		}

		enemyTag := payload.EnemyTag
		if enemyTag == "" {
			enemyTag = "B"
		}

		state := sokujitypes.NewMogi(homeTag, enemyTag)
		switch payload.Locale {
		case "en":
			state.IsJA = false
		case "ja":
			state.IsJA = true
		default:
			ja, err := s.guilds.IsJA(ctx, payload.GuildID)
			if err != nil {
				return fmt.Errorf("failed to resolve guild locale: %w", err)
			}
			state.IsJA = ja
		}
		if len(payload.BannerUsers) > 0 {
			state.AddBannerUsers(payload.BannerUsers)
		}

		// The previous message id is carried over so the fresh post
		// deletes the superseded summary.
		record := &sokujidb.Mogi{
			ChannelID: payload.ChannelID,
			GuildID:   payload.GuildID,
			State:     state,
		}
		if previous, err := s.MogiDB.Get(ctx, payload.ChannelID); err == nil {
			record.MessageID = previous.MessageID
		}

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// End archives the match. The summary stays in the channel as the
// durable result; mutations are refused until Resume.
func (s *SokujiService) End(ctx context.Context, payload sokujievents.ChannelPayload) error {
	return s.serviceWrapper(ctx, "End", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getRecord(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}
		if record.State.IsArchive {
			return s.reply(ctx, payload.ChannelID, record.State.IsJA, sokujitypes.ErrMogiArchived)
		}

		record.State.IsArchive = true
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// Resume reopens an archived match.
func (s *SokujiService) Resume(ctx context.Context, payload sokujievents.ChannelPayload) error {
	return s.serviceWrapper(ctx, "Resume", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getRecord(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		record.State.IsArchive = false
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// Edit updates match settings. Empty payload fields keep the current
// values; a non-empty user list replaces the banner set.
func (s *SokujiService) Edit(ctx context.Context, payload sokujievents.EditPayload) error {
	return s.serviceWrapper(ctx, "Edit", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		if payload.EnemyTag != "" {
			record.State.Tags[1] = payload.EnemyTag
		}
		if len(payload.Users) > 0 {
			record.State.BannerUsers = nil
			record.State.AddBannerUsers(payload.Users)
		}
		switch payload.Locale {
		case "en":
			record.State.IsJA = false
		case "ja":
			record.State.IsJA = true
		}

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}

// ChangeTag renames the enemy tag.
func (s *SokujiService) ChangeTag(ctx context.Context, payload sokujievents.TagChangePayload) error {
	return s.serviceWrapper(ctx, "ChangeTag", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		record.State.Tags[1] = payload.Name
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}
