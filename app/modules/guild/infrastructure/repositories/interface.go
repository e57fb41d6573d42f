package guilddb

import (
	"context"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GuildDB is a repository for guild configuration.
type GuildDB interface {
	Get(ctx context.Context, guildID shared.GuildID) (*GuildConfig, error)
	Upsert(ctx context.Context, config *GuildConfig) error
}
