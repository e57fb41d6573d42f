package resultsdb

import (
	"context"
	"time"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ResultDB is the durable store of registered match outcomes.
type ResultDB interface {
	// Register inserts a result unless an identical one already exists
	// for the same day. It reports whether a row was written.
	Register(ctx context.Context, result *Result) (bool, error)

	// List returns results for the guild ordered by play date, oldest
	// first. since narrows the range when non-nil.
	List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]Result, error)

	// Delete removes one registered result.
	Delete(ctx context.Context, guildID shared.GuildID, id int64) error
}
