package gatherdb

import (
	"context"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GatherDB is the persistence boundary for recruitment boards.
type GatherDB interface {
	Get(ctx context.Context, guildID shared.GuildID) (*GatherState, error)
	Upsert(ctx context.Context, record *GatherState) error
	Delete(ctx context.Context, guildID shared.GuildID) error
}
