package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GuildDBImpl is the bun-backed guild configuration store.
type GuildDBImpl struct {
	DB *bun.DB
}

// Get retrieves a guild's configuration.
func (db *GuildDBImpl) Get(ctx context.Context, guildID shared.GuildID) (*GuildConfig, error) {
	config := &GuildConfig{}
	err := db.DB.NewSelect().
		Model(config).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	return config, nil
}

// Upsert writes the guild's configuration.
func (db *GuildDBImpl) Upsert(ctx context.Context, config *GuildConfig) error {
	config.UpdatedAt = time.Now().UTC()
	_, err := db.DB.NewInsert().
		Model(config).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("team_tag = EXCLUDED.team_tag").
		Set("is_ja = EXCLUDED.is_ja").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert guild config: %w", err)
	}
	return nil
}
