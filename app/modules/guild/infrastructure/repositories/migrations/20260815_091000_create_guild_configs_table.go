package guildmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating guild_configs table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS guild_configs (
				guild_id VARCHAR(20) PRIMARY KEY,
				team_tag TEXT NOT NULL DEFAULT 'A',
				is_ja BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create guild_configs table: %w", err)
		}

		fmt.Println("Guild configs table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping guild_configs table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS guild_configs;`); err != nil {
			return fmt.Errorf("failed to drop guild_configs table: %w", err)
		}

		fmt.Println("Guild configs table dropped successfully!")
		return nil
	})
}
