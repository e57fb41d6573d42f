package sokujiservice

import (
	"context"
	"fmt"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

// AddRace appends a race from rank shorthand, or inserts it when a
// slot number is given.
func (s *SokujiService) AddRace(ctx context.Context, payload sokujievents.RaceAddPayload) error {
	return s.serviceWrapper(ctx, "AddRace", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		slot := 0
		if payload.RaceNum != nil {
			slot = *payload.RaceNum
		}
		if err := record.State.AddRace(payload.RankText, payload.TrackName, slot); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, record.State.IsJA, err)
		}
		s.metrics.RaceOperations.WithLabelValues("add").Inc()

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// Back removes a race; without a slot number the newest one goes.
func (s *SokujiService) Back(ctx context.Context, payload sokujievents.RaceDeletePayload) error {
	return s.serviceWrapper(ctx, "Back", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		slot := len(record.State.Races)
		if payload.RaceNum != nil {
			slot = *payload.RaceNum
		}
		if err := record.State.Back(slot); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, record.State.IsJA, err)
		}
		s.metrics.RaceOperations.WithLabelValues("back").Inc()

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, true)
	})
}

// EditRace replaces the ranks or track of a recorded race; without a
// slot number the newest one is edited.
func (s *SokujiService) EditRace(ctx context.Context, payload sokujievents.RaceEditPayload) error {
	return s.serviceWrapper(ctx, "EditRace", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		slot := len(record.State.Races)
		if payload.RaceNum != nil {
			slot = *payload.RaceNum
		}
		if err := record.State.EditRace(slot, payload.RankText, payload.TrackName); err != nil {
			return s.handleUserError(ctx, payload.ChannelID, record.State.IsJA, err)
		}
		s.metrics.RaceOperations.WithLabelValues("edit").Inc()

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}

// AddPenalty applies a manual score adjustment to one side.
func (s *SokujiService) AddPenalty(ctx context.Context, payload sokujievents.PenaltyPayload) error {
	return s.serviceWrapper(ctx, "AddPenalty", payload.ChannelID, func(ctx context.Context) error {
		if payload.Team < 0 || payload.Team > 1 {
			return fmt.Errorf("invalid team index %d", payload.Team)
		}

		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		switch payload.Kind {
		case "penalty":
			record.State.Penalty[payload.Team] += payload.Amount
		case "repick":
			record.State.Repick[payload.Team] += payload.Amount
		default:
			return fmt.Errorf("invalid adjustment kind %q", payload.Kind)
		}

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}

// ClearPenalty zeroes one adjustment vector.
func (s *SokujiService) ClearPenalty(ctx context.Context, payload sokujievents.PenaltyClearPayload) error {
	return s.serviceWrapper(ctx, "ClearPenalty", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		switch payload.Kind {
		case "penalty":
			record.State.Penalty = [2]int{}
		case "repick":
			record.State.Repick = [2]int{}
		default:
			return fmt.Errorf("invalid adjustment kind %q", payload.Kind)
		}

		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}

// AddBannerUsers subscribes users to the live score push.
func (s *SokujiService) AddBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error {
	return s.serviceWrapper(ctx, "AddBannerUsers", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		record.State.AddBannerUsers(payload.Users)
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}

// RemoveBannerUsers unsubscribes users from the live score push.
func (s *SokujiService) RemoveBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error {
	return s.serviceWrapper(ctx, "RemoveBannerUsers", payload.ChannelID, func(ctx context.Context) error {
		record, err := s.getActive(ctx, payload.ChannelID)
		if err != nil {
			return s.handleUserError(ctx, payload.ChannelID, true, err)
		}

		record.State.RemoveBannerUsers(payload.Users)
		if err := s.MogiDB.Upsert(ctx, record); err != nil {
			return err
		}
		return s.pushState(ctx, record, false)
	})
}
