package guildservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// DefaultTeamTag is used for guilds that never registered a team tag.
const DefaultTeamTag = "A"

// Service is the guild configuration surface.
type Service interface {
	GetConfig(ctx context.Context, guildID shared.GuildID) (*guilddb.GuildConfig, error)
	SetTeamTag(ctx context.Context, guildID shared.GuildID, tag string) error
	SetLocale(ctx context.Context, guildID shared.GuildID, ja bool) error

	// GuildReader surface consumed by the sokuji module.
	TeamTag(ctx context.Context, guildID shared.GuildID) (string, error)
	IsJA(ctx context.Context, guildID shared.GuildID) (bool, error)
}

// GuildService implements the Service interface.
type GuildService struct {
	GuildDB guilddb.GuildDB
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGuildService creates a new GuildService.
func NewGuildService(db guilddb.GuildDB, logger *slog.Logger, tracer trace.Tracer) *GuildService {
	return &GuildService{
		GuildDB: db,
		logger:  logger,
		tracer:  tracer,
	}
}

// GetConfig returns the guild's configuration, falling back to defaults
// when the guild never stored one.
func (s *GuildService) GetConfig(ctx context.Context, guildID shared.GuildID) (*guilddb.GuildConfig, error) {
	ctx, span := s.tracer.Start(ctx, "GetConfig", trace.WithAttributes(
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	config, err := s.GuildDB.Get(ctx, guildID)
	if err != nil {
		if errors.Is(err, guilddb.ErrNotFound) {
			return &guilddb.GuildConfig{
				GuildID: guildID,
				TeamTag: DefaultTeamTag,
				IsJA:    true,
			}, nil
		}
		span.RecordError(err)
		return nil, err
	}
	return config, nil
}

// SetTeamTag stores the guild's team tag.
func (s *GuildService) SetTeamTag(ctx context.Context, guildID shared.GuildID, tag string) error {
	ctx, span := s.tracer.Start(ctx, "SetTeamTag", trace.WithAttributes(
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	if tag == "" {
		return fmt.Errorf("team tag must not be empty")
	}

	config, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	config.TeamTag = tag
	if err := s.GuildDB.Upsert(ctx, config); err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.InfoContext(ctx, "team tag updated",
		slog.String("guild_id", string(guildID)),
		slog.String("team_tag", tag),
	)
	return nil
}

// SetLocale stores the guild's summary language.
func (s *GuildService) SetLocale(ctx context.Context, guildID shared.GuildID, ja bool) error {
	ctx, span := s.tracer.Start(ctx, "SetLocale", trace.WithAttributes(
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	config, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	config.IsJA = ja
	if err := s.GuildDB.Upsert(ctx, config); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// TeamTag returns the guild's team tag for match summaries.
func (s *GuildService) TeamTag(ctx context.Context, guildID shared.GuildID) (string, error) {
	config, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return "", err
	}
	return config.TeamTag, nil
}

// IsJA returns whether the guild renders summaries in Japanese.
func (s *GuildService) IsJA(ctx context.Context, guildID shared.GuildID) (bool, error) {
	config, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return false, err
	}
	return config.IsJA, nil
}
