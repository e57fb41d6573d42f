package resultsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// Service is the results application surface.
type Service interface {
	RegisterFromSummary(ctx context.Context, payload sokujievents.ResultRegisterPayload) (*resultsdb.Result, bool, error)
	List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]resultsdb.Result, error)
	Delete(ctx context.Context, guildID shared.GuildID, id int64) error
	DifferentialChart(ctx context.Context, guildID shared.GuildID) ([]byte, error)
	ExportXLSX(ctx context.Context, guildID shared.GuildID) ([]byte, error)
}

// ResultsService implements the Service interface.
type ResultsService struct {
	ResultDB resultsdb.ResultDB
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewResultsService creates a new ResultsService.
func NewResultsService(db resultsdb.ResultDB, logger *slog.Logger, tracer trace.Tracer) *ResultsService {
	return &ResultsService{
		ResultDB: db,
		logger:   logger,
		tracer:   tracer,
	}
}

// RegisterFromSummary turns a validated summary into a durable result
// row. The reported boolean is false when the same result was already
// registered for that day.
func (s *ResultsService) RegisterFromSummary(ctx context.Context, payload sokujievents.ResultRegisterPayload) (*resultsdb.Result, bool, error) {
	ctx, span := s.tracer.Start(ctx, "RegisterFromSummary", trace.WithAttributes(
		attribute.String("guild_id", string(payload.GuildID)),
	))
	defer span.End()

	state, err := sokujitypes.FromSummary(payload.Summary)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse summary: %w", err)
	}

	playedAt := payload.CreatedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	total := state.Total()
	result := &resultsdb.Result{
		GuildID:    payload.GuildID,
		Enemy:      state.Tags[1],
		Score:      total[0],
		EnemyScore: total[1],
		PlayedAt:   playedAt.UTC().Truncate(24 * time.Hour),
	}

	inserted, err := s.ResultDB.Register(ctx, result)
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	if !inserted {
		s.logger.InfoContext(ctx, "duplicate result ignored",
			slog.String("guild_id", string(payload.GuildID)),
			slog.String("enemy", result.Enemy),
		)
		return result, false, nil
	}

	s.logger.InfoContext(ctx, "result registered",
		slog.String("guild_id", string(payload.GuildID)),
		slog.String("enemy", result.Enemy),
		slog.Int("score", result.Score),
		slog.Int("enemy_score", result.EnemyScore),
	)
	return result, true, nil
}

// List returns the guild's registered results, oldest first.
func (s *ResultsService) List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]resultsdb.Result, error) {
	return s.ResultDB.List(ctx, guildID, since)
}

// Delete removes one registered result.
func (s *ResultsService) Delete(ctx context.Context, guildID shared.GuildID, id int64) error {
	return s.ResultDB.Delete(ctx, guildID, id)
}
