package gatherdb

import (
	"time"

	"github.com/uptrace/bun"

	gathertypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/domain/types"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GatherState is one guild's recruitment board, one row per guild.
type GatherState struct {
	bun.BaseModel `bun:"table:gather_states"`

	GuildID   shared.GuildID        `bun:"guild_id,pk"`
	Board     gathertypes.Gathering `bun:"board,type:jsonb,notnull"`
	UpdatedAt time.Time             `bun:"updated_at,notnull"`
}
