package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	guildservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/application"
	guilddb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/infrastructure/repositories"
	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	resultsdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/infrastructure/repositories"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

type fakeBannerDB struct {
	payloads map[shared.DiscordID]sokujievents.LivePayload
}

func (f *fakeBannerDB) Put(ctx context.Context, userID shared.DiscordID, payload sokujievents.LivePayload) error {
	f.payloads[userID] = payload
	return nil
}

func (f *fakeBannerDB) Get(ctx context.Context, userID shared.DiscordID) (*sokujievents.LivePayload, error) {
	payload, ok := f.payloads[userID]
	if !ok {
		return nil, sokujidb.ErrNotFound
	}
	return &payload, nil
}

var _ sokujidb.BannerDB = (*fakeBannerDB)(nil)

func TestGetLive(t *testing.T) {
	db := &fakeBannerDB{payloads: map[shared.DiscordID]sokujievents.LivePayload{
		"u1": {Teams: [2]string{"AB", "XY"}, Left: 11, Dif: "+40", Scores: [2]int{61, 21}},
	}}
	h := &SokujiHandler{BannerDB: db}
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/u1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var payload sokujievents.LivePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.Dif != "+40" || payload.Scores != [2]int{61, 21} {
		t.Errorf("payload = %+v", payload)
	}

	resp, err = http.Get(srv.URL + "/nobody")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing user status = %d", resp.StatusCode)
	}
}

type fakeGuildService struct {
	guildservice.Service
	config *guilddb.GuildConfig
	tag    string
}

func (f *fakeGuildService) GetConfig(ctx context.Context, guildID shared.GuildID) (*guilddb.GuildConfig, error) {
	return f.config, nil
}

func (f *fakeGuildService) SetTeamTag(ctx context.Context, guildID shared.GuildID, tag string) error {
	f.tag = tag
	return nil
}

func TestGuildSettings(t *testing.T) {
	service := &fakeGuildService{config: &guilddb.GuildConfig{GuildID: "g1", TeamTag: "AB", IsJA: true}}
	h := &GuildHandler{Service: service}
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/g1/settings")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var config guilddb.GuildConfig
	if err := json.NewDecoder(resp.Body).Decode(&config); err != nil {
		t.Fatal(err)
	}
	if config.TeamTag != "AB" {
		t.Errorf("team tag = %q", config.TeamTag)
	}

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/g1/settings/tag", strings.NewReader(`{"team_tag":"ZZ"}`))
	if err != nil {
		t.Fatal(err)
	}
	putResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	putResp.Body.Close()
	if putResp.StatusCode != http.StatusOK {
		t.Errorf("put status = %d", putResp.StatusCode)
	}
	if service.tag != "ZZ" {
		t.Errorf("tag = %q, want ZZ", service.tag)
	}
}

type fakeResultsService struct {
	resultsservice.Service
	rows []resultsdb.Result
}

func (f *fakeResultsService) List(ctx context.Context, guildID shared.GuildID, since *time.Time) ([]resultsdb.Result, error) {
	if since == nil {
		return f.rows, nil
	}
	var out []resultsdb.Result
	for _, row := range f.rows {
		if !row.PlayedAt.Before(*since) {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestListResults(t *testing.T) {
	service := &fakeResultsService{rows: []resultsdb.Result{
		{ID: 1, GuildID: "g1", Enemy: "XY", Score: 512, EnemyScore: 412, PlayedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, GuildID: "g1", Enemy: "ZZ", Score: 430, EnemyScore: 494, PlayedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}}
	h := &ResultsHandler{Service: service}
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/g1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rows []resultsdb.Result
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}

	// A since filter narrows the window.
	resp, err = http.Get(srv.URL + "/g1?since=8%2F10%201")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	rows = nil
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Enemy != "ZZ" {
		t.Errorf("filtered rows = %+v", rows)
	}
}
