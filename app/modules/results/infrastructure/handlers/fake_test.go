package resultshandlers

import (
	"context"
	"time"

	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// FakeResultsService records calls and lets tests override outcomes.
type FakeResultsService struct {
	Calls []string

	RegisterFromSummaryFunc func(ctx context.Context, payload sokujievents.ResultRegisterPayload) (*resultsdb.Result, bool, error)
}

var _ resultsservice.Service = (*FakeResultsService)(nil)

func (f *FakeResultsService) RegisterFromSummary(ctx context.Context, payload sokujievents.ResultRegisterPayload) (*resultsdb.Result, bool, error) {
	f.Calls = append(f.Calls, "RegisterFromSummary")
	if f.RegisterFromSummaryFunc != nil {
		return f.RegisterFromSummaryFunc(ctx, payload)
	}
	return &resultsdb.Result{GuildID: payload.GuildID}, true, nil
}

func (f *FakeResultsService) List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]resultsdb.Result, error) {
	f.Calls = append(f.Calls, "List")
	return nil, nil
}

func (f *FakeResultsService) Delete(ctx context.Context, guildID shared.GuildID, id int64) error {
	f.Calls = append(f.Calls, "Delete")
	return nil
}

func (f *FakeResultsService) DifferentialChart(ctx context.Context, guildID shared.GuildID) ([]byte, error) {
	f.Calls = append(f.Calls, "DifferentialChart")
	return nil, nil
}

func (f *FakeResultsService) ExportXLSX(ctx context.Context, guildID shared.GuildID) ([]byte, error) {
	f.Calls = append(f.Calls, "ExportXLSX")
	return nil, nil
}
