package sokujidb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// BannerDBImpl is the bun-backed live payload store.
type BannerDBImpl struct {
	DB *bun.DB
}

// Put overwrites the subscriber's payload with the latest scores.
func (db *BannerDBImpl) Put(ctx context.Context, userID shared.DiscordID, payload sokujievents.LivePayload) error {
	record := &Banner{
		UserID:    userID,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := db.DB.NewInsert().
		Model(record).
		On("CONFLICT (user_id) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to put banner payload: %w", err)
	}
	return nil
}

// Get retrieves the subscriber's latest payload.
func (db *BannerDBImpl) Get(ctx context.Context, userID shared.DiscordID) (*sokujievents.LivePayload, error) {
	record := &Banner{}
	err := db.DB.NewSelect().
		Model(record).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get banner payload: %w", err)
	}
	return &record.Payload, nil
}
