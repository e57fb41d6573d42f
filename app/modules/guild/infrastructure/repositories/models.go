package guilddb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GuildConfig holds a Discord server's team settings.
type GuildConfig struct {
	bun.BaseModel `bun:"table:guild_configs,alias:g"`

	GuildID   shared.GuildID `bun:"guild_id,pk,notnull,type:varchar(20)"`
	TeamTag   string         `bun:"team_tag,notnull,default:'A'"`
	IsJA      bool           `bun:"is_ja,notnull,default:true"`
	CreatedAt time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
