package gatherservice

import (
	"context"

	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Service drives a guild's recruitment board.
type Service interface {
	Can(ctx context.Context, payload gatherevents.HoursPayload) error
	Tentative(ctx context.Context, payload gatherevents.HoursPayload) error
	Drop(ctx context.Context, payload gatherevents.HoursPayload) error
	Out(ctx context.Context, payload gatherevents.HoursPayload) error
	Clear(ctx context.Context, payload gatherevents.ChannelPayload) error
	Now(ctx context.Context, payload gatherevents.ChannelPayload) error
}

// GuildReader resolves per-guild settings owned by the guild module.
type GuildReader interface {
	IsJA(ctx context.Context, guildID shared.GuildID) (bool, error)
}
