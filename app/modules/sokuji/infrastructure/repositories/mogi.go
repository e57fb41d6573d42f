package sokujidb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// MogiDBImpl is the bun-backed match store.
type MogiDBImpl struct {
	DB *bun.DB
}

// Get retrieves the live match for a channel.
func (db *MogiDBImpl) Get(ctx context.Context, channelID shared.ChannelID) (*Mogi, error) {
	record := &Mogi{}
	err := db.DB.NewSelect().
		Model(record).
		Where("channel_id = ?", channelID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mogi: %w", err)
	}
	return record, nil
}

// Upsert writes the full match record, replacing any existing row for
// the channel.
func (db *MogiDBImpl) Upsert(ctx context.Context, record *Mogi) error {
	record.UpdatedAt = time.Now().UTC()
	_, err := db.DB.NewInsert().
		Model(record).
		On("CONFLICT (channel_id) DO UPDATE").
		Set("guild_id = EXCLUDED.guild_id").
		Set("state = EXCLUDED.state").
		Set("message_id = EXCLUDED.message_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert mogi: %w", err)
	}
	return nil
}

// SetMessageID records the currently posted summary message without
// touching the state blob.
func (db *MogiDBImpl) SetMessageID(ctx context.Context, channelID shared.ChannelID, messageID shared.MessageID) error {
	result, err := db.DB.NewUpdate().
		Model((*Mogi)(nil)).
		Set("message_id = ?", messageID).
		Set("updated_at = ?", time.Now().UTC()).
		Where("channel_id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set message id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after update: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the match record for a channel.
func (db *MogiDBImpl) Delete(ctx context.Context, channelID shared.ChannelID) error {
	_, err := db.DB.NewDelete().
		Model((*Mogi)(nil)).
		Where("channel_id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete mogi: %w", err)
	}
	return nil
}
