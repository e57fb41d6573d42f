package gathermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating gather_states table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS gather_states (
				guild_id TEXT PRIMARY KEY,
				board JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create gather_states table: %w", err)
		}

		fmt.Println("Gather_states table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping gather_states table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS gather_states;`); err != nil {
			return fmt.Errorf("failed to drop gather_states table: %w", err)
		}

		fmt.Println("Gather_states table dropped successfully!")
		return nil
	})
}
