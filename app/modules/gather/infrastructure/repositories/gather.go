package gatherdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GatherDBImpl is the bun-backed board store.
type GatherDBImpl struct {
	DB *bun.DB
}

// Get retrieves the recruitment board for a guild.
func (db *GatherDBImpl) Get(ctx context.Context, guildID shared.GuildID) (*GatherState, error) {
	record := &GatherState{}
	err := db.DB.NewSelect().
		Model(record).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gather state: %w", err)
	}
	return record, nil
}

// Upsert writes the full board, replacing any existing row for the
// guild.
func (db *GatherDBImpl) Upsert(ctx context.Context, record *GatherState) error {
	record.UpdatedAt = time.Now().UTC()
	_, err := db.DB.NewInsert().
		Model(record).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("board = EXCLUDED.board").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert gather state: %w", err)
	}
	return nil
}

// Delete removes the board for a guild.
func (db *GatherDBImpl) Delete(ctx context.Context, guildID shared.GuildID) error {
	_, err := db.DB.NewDelete().
		Model((*GatherState)(nil)).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete gather state: %w", err)
	}
	return nil
}
