package resultsdb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ResultDBImpl is the bun-backed result store.
type ResultDBImpl struct {
	DB *bun.DB
}

// Register inserts the result unless the same matchup with the same
// scores is already recorded for that day. Summaries get nominated
// more than once; the dedupe keeps re-registration harmless.
func (db *ResultDBImpl) Register(ctx context.Context, result *Result) (bool, error) {
	exists, err := db.DB.NewSelect().
		Model((*Result)(nil)).
		Where("guild_id = ?", result.GuildID).
		Where("enemy = ?", result.Enemy).
		Where("score = ?", result.Score).
		Where("enemy_score = ?", result.EnemyScore).
		Where("played_at = ?", result.PlayedAt.Format("2006-01-02")).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate result: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := db.DB.NewInsert().Model(result).Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to insert result: %w", err)
	}
	return true, nil
}

// List returns the guild's results ordered by play date, oldest first.
func (db *ResultDBImpl) List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]Result, error) {
	var results []Result
	query := db.DB.NewSelect().
		Model(&results).
		Where("guild_id = ?", guildID).
		Order("played_at ASC", "id ASC")
	if since != nil {
		query = query.Where("played_at >= ?", since.Format("2006-01-02"))
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// Delete removes one registered result.
func (db *ResultDBImpl) Delete(ctx context.Context, guildID shared.GuildID, id int64) error {
	res, err := db.DB.NewDelete().
		Model((*Result)(nil)).
		Where("guild_id = ?", guildID).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after delete: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
