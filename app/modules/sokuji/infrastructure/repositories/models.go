package sokujidb

import (
	"time"

	"github.com/uptrace/bun"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Mogi is one live match record. State carries the full domain blob.
type Mogi struct {
	bun.BaseModel `bun:"table:mogis"`

	ChannelID shared.ChannelID  `bun:"channel_id,pk"`
	GuildID   shared.GuildID    `bun:"guild_id"`
	State     *sokujitypes.Mogi `bun:"state,type:jsonb,notnull"`
	MessageID shared.MessageID  `bun:"message_id"`
	UpdatedAt time.Time         `bun:"updated_at,notnull,default:current_timestamp"`
}

// Banner is the latest live payload pushed to one subscriber.
type Banner struct {
	bun.BaseModel `bun:"table:sokuji_banners"`

	UserID    shared.DiscordID         `bun:"user_id,pk"`
	Payload   sokujievents.LivePayload `bun:"payload,type:jsonb,notnull"`
	UpdatedAt time.Time                `bun:"updated_at,notnull,default:current_timestamp"`
}
