package sokujiservice

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ------------------------
// Fake MogiDB
// ------------------------

type FakeMogiDB struct {
	Records map[shared.ChannelID]*sokujidb.Mogi

	GetErr    error
	UpsertErr error
}

func NewFakeMogiDB() *FakeMogiDB {
	return &FakeMogiDB{Records: map[shared.ChannelID]*sokujidb.Mogi{}}
}

func (f *FakeMogiDB) Get(ctx context.Context, channelID shared.ChannelID) (*sokujidb.Mogi, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	record, ok := f.Records[channelID]
	if !ok {
		return nil, sokujidb.ErrNotFound
	}
	return record, nil
}

func (f *FakeMogiDB) Upsert(ctx context.Context, record *sokujidb.Mogi) error {
	if f.UpsertErr != nil {
		return f.UpsertErr
	}
	f.Records[record.ChannelID] = record
	return nil
}

func (f *FakeMogiDB) SetMessageID(ctx context.Context, channelID shared.ChannelID, messageID shared.MessageID) error {
	record, ok := f.Records[channelID]
	if !ok {
		return sokujidb.ErrNotFound
	}
	record.MessageID = messageID
	return nil
}

func (f *FakeMogiDB) Delete(ctx context.Context, channelID shared.ChannelID) error {
	delete(f.Records, channelID)
	return nil
}

var _ sokujidb.MogiDB = (*FakeMogiDB)(nil)

// ------------------------
// Fake BannerDB
// ------------------------

type FakeBannerDB struct {
	Payloads map[shared.DiscordID]sokujievents.LivePayload
	PutErr   error
}

func NewFakeBannerDB() *FakeBannerDB {
	return &FakeBannerDB{Payloads: map[shared.DiscordID]sokujievents.LivePayload{}}
}

func (f *FakeBannerDB) Put(ctx context.Context, userID shared.DiscordID, payload sokujievents.LivePayload) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	f.Payloads[userID] = payload
	return nil
}

func (f *FakeBannerDB) Get(ctx context.Context, userID shared.DiscordID) (*sokujievents.LivePayload, error) {
	payload, ok := f.Payloads[userID]
	if !ok {
		return nil, sokujidb.ErrNotFound
	}
	return &payload, nil
}

var _ sokujidb.BannerDB = (*FakeBannerDB)(nil)

// ------------------------
// Fake GuildReader
// ------------------------

type FakeGuilds struct {
	Tag string
	JA  bool
}

func (f *FakeGuilds) TeamTag(ctx context.Context, guildID shared.GuildID) (string, error) {
	return f.Tag, nil
}

func (f *FakeGuilds) IsJA(ctx context.Context, guildID shared.GuildID) (bool, error) {
	return f.JA, nil
}

var _ GuildReader = (*FakeGuilds)(nil)

// ------------------------
// Fake ChannelHistory
// ------------------------

type FakeHistory struct {
	Messages []HistoryMessage
	Err      error
}

func (f *FakeHistory) Recent(ctx context.Context, channelID shared.ChannelID, since time.Time) ([]HistoryMessage, error) {
	return f.Messages, f.Err
}

var _ ChannelHistory = (*FakeHistory)(nil)

// ------------------------
// Fake EventBus
// ------------------------

type FakeEventBus struct {
	Messages map[string][]*message.Message
	PubErr   error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{Messages: map[string][]*message.Message{}}
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if f.PubErr != nil {
		return f.PubErr
	}
	f.Messages[topic] = append(f.Messages[topic], msg)
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *FakeEventBus) Close() error { return nil }

var _ shared.EventBus = (*FakeEventBus)(nil)

// last decodes the newest message on a topic into out.
func (f *FakeEventBus) last(t *testing.T, topic string, out any) {
	t.Helper()
	msgs := f.Messages[topic]
	if len(msgs) == 0 {
		t.Fatalf("no messages published on %s", topic)
	}
	if err := json.Unmarshal(msgs[len(msgs)-1].Payload, out); err != nil {
		t.Fatalf("unmarshal %s payload: %v", topic, err)
	}
}
