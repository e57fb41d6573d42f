package resultsdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Result is one registered match outcome.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`

	ID         int64          `bun:"id,pk,autoincrement"`
	GuildID    shared.GuildID `bun:"guild_id,notnull"`
	Enemy      string         `bun:"enemy,notnull"`
	Score      int            `bun:"score,notnull"`
	EnemyScore int            `bun:"enemy_score,notnull"`
	PlayedAt   time.Time      `bun:"played_at,notnull,type:date"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Diff is the signed score differential of the result.
func (r *Result) Diff() int {
	return r.Score - r.EnemyScore
}
