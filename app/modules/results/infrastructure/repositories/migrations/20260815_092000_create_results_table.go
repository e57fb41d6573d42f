package resultsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating results table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS results (
				id BIGSERIAL PRIMARY KEY,
				guild_id TEXT NOT NULL,
				enemy TEXT NOT NULL,
				score INTEGER NOT NULL,
				enemy_score INTEGER NOT NULL,
				played_at DATE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create results table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS results_guild_played_idx
			ON results (guild_id, played_at);
		`)
		if err != nil {
			return fmt.Errorf("failed to create results index: %w", err)
		}

		fmt.Println("Results table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping results table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS results;`); err != nil {
			return fmt.Errorf("failed to drop results table: %w", err)
		}

		fmt.Println("Results table dropped successfully!")
		return nil
	})
}
