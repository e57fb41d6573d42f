package gatherevents

import (
	"time"

	gathertypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/domain/types"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Recruitment command topics.
const (
	CanTopic       = "gather.can.request"
	TentativeTopic = "gather.tentative.request"
	DropTopic      = "gather.drop.request"
	OutTopic       = "gather.out.request"
	ClearTopic     = "gather.clear.request"
	NowTopic       = "gather.now.request"
)

// Outbound topics.
const (
	LineupSendTopic = "discord.lineup.send"
	ReplyTopic      = "discord.reply"
)

// HoursPayload carries hand raises and drops for a set of hours.
type HoursPayload struct {
	GuildID   shared.GuildID     `json:"guild_id"`
	ChannelID shared.ChannelID   `json:"channel_id"`
	UserIDs   []shared.DiscordID `json:"user_ids"`
	Hours     string             `json:"hours"`
}

// ChannelPayload addresses a command with no arguments.
type ChannelPayload struct {
	GuildID   shared.GuildID   `json:"guild_id"`
	ChannelID shared.ChannelID `json:"channel_id"`
}

// LineupSendPayload instructs the gateway to post the war list.
type LineupSendPayload struct {
	ChannelID shared.ChannelID    `json:"channel_id"`
	Content   string              `json:"content,omitempty"`
	Lineup    *gathertypes.Lineup `json:"lineup,omitempty"`

	// Archive asks the gateway to strip previous lineup posts of
	// their embeds before sending.
	Archive bool `json:"archive,omitempty"`

	SentAt time.Time `json:"sent_at,omitempty"`
}

// ReplyPayload carries a localized response to the invoking channel.
type ReplyPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Content   string           `json:"content"`
}
