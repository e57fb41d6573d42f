package sokujievents

import (
	"time"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Inbound topics published by the chat gateway.
const (
	ChatLineTopic       = "discord.message.created"
	MessagePostedTopic  = "discord.message.posted"
	StartRequest        = "sokuji.start.request"
	RaceAddRequest      = "sokuji.race.add.request"
	RaceDeleteRequest   = "sokuji.race.delete.request"
	RaceEditRequest     = "sokuji.race.edit.request"
	PenaltyRequest      = "sokuji.penalty.request"
	PenaltyClearRequest = "sokuji.penalty.clear.request"
	BannerAddRequest    = "sokuji.banner.add.request"
	BannerRemoveRequest = "sokuji.banner.remove.request"
	EndRequest          = "sokuji.end.request"
	ResumeRequest       = "sokuji.resume.request"
	EditRequest         = "sokuji.edit.request"
	TagChangeRequest    = "sokuji.tag.request"
	ResultRegisterTopic = "sokuji.result.register.request"
)

// Outbound topics consumed by the chat gateway, viewers, and the
// results module.
const (
	MessageSendTopic      = "discord.message.send"
	MessageRefreshTopic   = "discord.message.refresh"
	ReplyTopic            = "discord.reply"
	UpdatedTopic          = "sokuji.updated"
	ResultRegisteredTopic = "sokuji.result.registered"
)

// ChatLinePayload is one ordinary chat message in a channel.
type ChatLinePayload struct {
	GuildID   shared.GuildID   `json:"guild_id"`
	ChannelID shared.ChannelID `json:"channel_id"`
	AuthorID  shared.DiscordID `json:"author_id"`
	Bot       bool             `json:"bot"`
	Content   string           `json:"content"`
}

// MessagePostedPayload acknowledges that the gateway posted a summary
// message; the repository's message pointer is updated from it.
type MessagePostedPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	MessageID shared.MessageID `json:"message_id"`
}

// StartPayload opens a new match in a channel.
type StartPayload struct {
	GuildID     shared.GuildID   `json:"guild_id"`
	ChannelID   shared.ChannelID `json:"channel_id"`
	EnemyTag    string           `json:"enemy_tag"`
	BannerUsers []string         `json:"banner_users,omitempty"`
	Locale      string           `json:"locale,omitempty"`
}

// RaceAddPayload appends or inserts a race.
type RaceAddPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	RankText  string           `json:"rank_text"`
	TrackName string           `json:"track_name,omitempty"`
	RaceNum   *int             `json:"race_num,omitempty"`
}

// RaceDeletePayload removes a race; nil RaceNum removes the last.
type RaceDeletePayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	RaceNum   *int             `json:"race_num,omitempty"`
}

// RaceEditPayload replaces a race; nil RaceNum edits the last.
type RaceEditPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	RankText  string           `json:"rank_text,omitempty"`
	TrackName string           `json:"track_name,omitempty"`
	RaceNum   *int             `json:"race_num,omitempty"`
}

// PenaltyPayload applies a manual score adjustment.
type PenaltyPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Kind      string           `json:"kind"` // "penalty" or "repick"
	Team      int              `json:"team"` // 0 = home, 1 = enemy
	Amount    int              `json:"amount"`
}

// PenaltyClearPayload zeroes one adjustment vector.
type PenaltyClearPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Kind      string           `json:"kind"`
}

// BannerPayload adds or removes live-push subscribers.
type BannerPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Users     []string         `json:"users"`
}

// ChannelPayload addresses a match by channel only (end/resume).
type ChannelPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
}

// EditPayload updates match settings; empty fields are left unchanged.
type EditPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	EnemyTag  string           `json:"enemy_tag,omitempty"`
	Users     []string         `json:"users,omitempty"`
	Locale    string           `json:"locale,omitempty"`
}

// TagChangePayload renames the enemy tag.
type TagChangePayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Name      string           `json:"name"`
}

// ResultRegisterPayload nominates a posted summary for durable result
// registration.
type ResultRegisterPayload struct {
	GuildID   shared.GuildID      `json:"guild_id"`
	AuthorID  shared.DiscordID    `json:"author_id"`
	Summary   sokujitypes.Summary `json:"summary"`
	CreatedAt time.Time           `json:"created_at"`
}

// MessageSendPayload asks the gateway to post a fresh summary and
// delete the superseded message, so the old state stops being
// independently resolvable.
type MessageSendPayload struct {
	ChannelID       shared.ChannelID    `json:"channel_id"`
	Content         string              `json:"content,omitempty"`
	Summary         sokujitypes.Summary `json:"summary"`
	DeleteMessageID shared.MessageID    `json:"delete_message_id,omitempty"`
	AttachResult    bool                `json:"attach_result,omitempty"`
}

// MessageRefreshPayload asks the gateway to edit the summary in place,
// preserving message identity.
type MessageRefreshPayload struct {
	ChannelID    shared.ChannelID    `json:"channel_id"`
	MessageID    shared.MessageID    `json:"message_id"`
	Content      string              `json:"content,omitempty"`
	Summary      sokujitypes.Summary `json:"summary"`
	AttachResult bool                `json:"attach_result,omitempty"`
}

// ReplyPayload is a localized acknowledgement or error for the user.
type ReplyPayload struct {
	ChannelID shared.ChannelID `json:"channel_id"`
	Content   string           `json:"content"`
}

// LivePayload is the banner viewer's score record.
type LivePayload struct {
	Teams  [2]string `json:"teams"`
	Left   int       `json:"left"`
	Win    int       `json:"win"`
	Dif    string    `json:"dif"`
	Scores [2]int    `json:"scores"`
}
