package sokujimigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sokuji tables...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS mogis (
				channel_id TEXT PRIMARY KEY,
				guild_id TEXT NOT NULL DEFAULT '',
				state JSONB NOT NULL,
				message_id TEXT NOT NULL DEFAULT '',
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create mogis table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS sokuji_banners (
				user_id TEXT PRIMARY KEY,
				payload JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create sokuji_banners table: %w", err)
		}

		fmt.Println("Sokuji tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping sokuji tables...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS sokuji_banners;`); err != nil {
			return fmt.Errorf("failed to drop sokuji_banners table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS mogis;`); err != nil {
			return fmt.Errorf("failed to drop mogis table: %w", err)
		}

		fmt.Println("Sokuji tables dropped successfully!")
		return nil
	})
}
