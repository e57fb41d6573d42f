package sokujidb

import (
	"context"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// MogiDB is the authoritative store for live match state, keyed by
// channel. The rendered summary message is only a projection of it.
type MogiDB interface {
	Get(ctx context.Context, channelID shared.ChannelID) (*Mogi, error)
	Upsert(ctx context.Context, record *Mogi) error
	SetMessageID(ctx context.Context, channelID shared.ChannelID, messageID shared.MessageID) error
	Delete(ctx context.Context, channelID shared.ChannelID) error
}

// BannerDB stores the latest live payload per banner subscriber, read
// back by the external viewer endpoint.
type BannerDB interface {
	Put(ctx context.Context, userID shared.DiscordID, payload sokujievents.LivePayload) error
	Get(ctx context.Context, userID shared.DiscordID) (*sokujievents.LivePayload, error)
}
