package sokujiservice

import (
	"context"
	"time"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Service is the sokuji application surface consumed by the handlers.
type Service interface {
	// Lifecycle
	Start(ctx context.Context, payload sokujievents.StartPayload) error
	End(ctx context.Context, payload sokujievents.ChannelPayload) error
	Resume(ctx context.Context, payload sokujievents.ChannelPayload) error
	Edit(ctx context.Context, payload sokujievents.EditPayload) error
	ChangeTag(ctx context.Context, payload sokujievents.TagChangePayload) error

	// Races and adjustments
	AddRace(ctx context.Context, payload sokujievents.RaceAddPayload) error
	Back(ctx context.Context, payload sokujievents.RaceDeletePayload) error
	EditRace(ctx context.Context, payload sokujievents.RaceEditPayload) error
	AddPenalty(ctx context.Context, payload sokujievents.PenaltyPayload) error
	ClearPenalty(ctx context.Context, payload sokujievents.PenaltyClearPayload) error

	// Live push
	AddBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error
	RemoveBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error

	// Results
	RegisterResult(ctx context.Context, payload sokujievents.ResultRegisterPayload) error

	// Passive chat
	HandleChatLine(ctx context.Context, payload sokujievents.ChatLinePayload) error
	HandleMessagePosted(ctx context.Context, payload sokujievents.MessagePostedPayload) error
}

// GuildReader provides the guild's team settings without binding this
// module to the guild repository implementation.
type GuildReader interface {
	TeamTag(ctx context.Context, guildID shared.GuildID) (string, error)
	IsJA(ctx context.Context, guildID shared.GuildID) (bool, error)
}

// HistoryMessage is one channel message seen by the history scanner.
type HistoryMessage struct {
	ID        shared.MessageID
	AuthorID  shared.DiscordID
	Bot       bool
	Content   string
	Summary   *sokujitypes.Summary
	CreatedAt time.Time
}

// ChannelHistory lets the service rebuild state from posted summaries
// when the store has no record, newest message first.
type ChannelHistory interface {
	Recent(ctx context.Context, channelID shared.ChannelID, since time.Time) ([]HistoryMessage, error)
}
