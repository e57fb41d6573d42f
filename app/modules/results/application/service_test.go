package resultsservice

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/trace/noop"

	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

type fakeResultDB struct {
	rows   []resultsdb.Result
	nextID int64
}

func (f *fakeResultDB) Register(ctx context.Context, result *resultsdb.Result) (bool, error) {
	for _, row := range f.rows {
		if row.GuildID == result.GuildID &&
			row.Enemy == result.Enemy &&
			row.Score == result.Score &&
			row.EnemyScore == result.EnemyScore &&
			row.PlayedAt.Equal(result.PlayedAt) {
			return false, nil
		}
	}
	f.nextID++
	result.ID = f.nextID
	f.rows = append(f.rows, *result)
	return true, nil
}

func (f *fakeResultDB) List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]resultsdb.Result, error) {
	var out []resultsdb.Result
	for _, row := range f.rows {
		if row.GuildID != guildID {
			continue
		}
		if since != nil && row.PlayedAt.Before(*since) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeResultDB) Delete(ctx context.Context, guildID shared.GuildID, id int64) error {
	for i, row := range f.rows {
		if row.GuildID == guildID && row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return resultsdb.ErrNotFound
}

var _ resultsdb.ResultDB = (*fakeResultDB)(nil)

func newService(db resultsdb.ResultDB) *ResultsService {
	return NewResultsService(
		db,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)
}

func summaryPayload(t *testing.T) sokujievents.ResultRegisterPayload {
	t.Helper()
	m := sokujitypes.NewMogi("AB", "XY")
	for _, text := range []string{"123456", "789012"} {
		if err := m.AddRace(text, "", 0); err != nil {
			t.Fatal(err)
		}
	}
	return sokujievents.ResultRegisterPayload{
		GuildID:   "guild-1",
		AuthorID:  "user-1",
		Summary:   m.Summary(),
		CreatedAt: time.Date(2026, 8, 15, 21, 30, 0, 0, time.UTC),
	}
}

func TestRegisterFromSummary(t *testing.T) {
	db := &fakeResultDB{}
	s := newService(db)
	ctx := context.Background()

	result, inserted, err := s.RegisterFromSummary(ctx, summaryPayload(t))
	if err != nil {
		t.Fatalf("RegisterFromSummary: %v", err)
	}
	if !inserted {
		t.Fatal("first registration should insert")
	}
	if result.Enemy != "XY" {
		t.Errorf("enemy = %q", result.Enemy)
	}
	// 61+21 then 21+61: both sides end at 82.
	if result.Score != 82 || result.EnemyScore != 82 {
		t.Errorf("scores = %d:%d", result.Score, result.EnemyScore)
	}
	if got := result.PlayedAt; got != time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC) {
		t.Errorf("played at = %v", got)
	}

	// Nominating the same summary again is a no-op.
	_, inserted, err = s.RegisterFromSummary(ctx, summaryPayload(t))
	if err != nil {
		t.Fatal(err)
	}
	if inserted {
		t.Error("duplicate registration should not insert")
	}
	if len(db.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(db.rows))
	}
}

func TestRegisterFromSummaryRejectsForeign(t *testing.T) {
	s := newService(&fakeResultDB{})

	_, _, err := s.RegisterFromSummary(context.Background(), sokujievents.ResultRegisterPayload{
		GuildID: "guild-1",
		Summary: sokujitypes.Summary{Title: "Weekly standings"},
	})
	if err == nil {
		t.Fatal("foreign summary must be refused")
	}
}

func TestDifferentialChartRendersPNG(t *testing.T) {
	db := &fakeResultDB{}
	s := newService(db)
	ctx := context.Background()

	for _, tc := range []struct{ score, enemy int }{{512, 412}, {430, 494}} {
		ok, err := db.Register(ctx, &resultsdb.Result{
			GuildID:    "guild-1",
			Enemy:      "XY",
			Score:      tc.score,
			EnemyScore: tc.enemy,
			PlayedAt:   time.Date(2026, 8, 10+tc.score%5, 0, 0, 0, 0, time.UTC),
		})
		if err != nil || !ok {
			t.Fatalf("seed: %v %v", ok, err)
		}
	}

	png, err := s.DifferentialChart(ctx, "guild-1")
	if err != nil {
		t.Fatalf("DifferentialChart: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG, starts with %q", png[:4])
	}

	// Empty guilds still render a placeholder image.
	png, err = s.DifferentialChart(ctx, "guild-empty")
	if err != nil {
		t.Fatalf("placeholder: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("placeholder is not a PNG")
	}
}

func TestExportXLSX(t *testing.T) {
	db := &fakeResultDB{}
	s := newService(db)
	ctx := context.Background()

	if _, err := db.Register(ctx, &resultsdb.Result{
		GuildID:    "guild-1",
		Enemy:      "XY",
		Score:      512,
		EnemyScore: 412,
		PlayedAt:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}

	data, err := s.ExportXLSX(ctx, "guild-1")
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Results")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][1] != "XY" {
		t.Errorf("enemy cell = %q", rows[1][1])
	}
	if rows[1][4] != "100" {
		t.Errorf("differential cell = %q", rows[1][4])
	}
}

func TestParseWhen(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	tests := []struct {
		input string
		want  time.Time
	}{
		{"8/15 21", time.Date(2026, 8, 15, 21, 0, 0, 0, time.UTC)},
		{"21", time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC)},
		{"2025/12/31 9", time.Date(2025, 12, 31, 9, 0, 0, 0, time.UTC)},
		{"15 21", time.Date(2026, 8, 15, 21, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseWhen(tt.input, now)
		if err != nil {
			t.Errorf("ParseWhen(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseWhen(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseWhen("definitely not a date", now); err == nil {
		t.Error("nonsense input must fail")
	}
}

func TestDelete(t *testing.T) {
	db := &fakeResultDB{}
	s := newService(db)
	ctx := context.Background()

	if _, err := db.Register(ctx, &resultsdb.Result{GuildID: "guild-1", Enemy: "XY", PlayedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "guild-1", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "guild-1", 99); err == nil {
		t.Error("missing id must fail")
	}
}
