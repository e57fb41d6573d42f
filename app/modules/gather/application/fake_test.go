package gatherservice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	gatherdb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ------------------------
// Fake GatherDB
// ------------------------

type FakeGatherDB struct {
	Records map[shared.GuildID]*gatherdb.GatherState

	GetErr    error
	UpsertErr error
}

func NewFakeGatherDB() *FakeGatherDB {
	return &FakeGatherDB{Records: map[shared.GuildID]*gatherdb.GatherState{}}
}

func (f *FakeGatherDB) Get(ctx context.Context, guildID shared.GuildID) (*gatherdb.GatherState, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	record, ok := f.Records[guildID]
	if !ok {
		return nil, gatherdb.ErrNotFound
	}
	return record, nil
}

func (f *FakeGatherDB) Upsert(ctx context.Context, record *gatherdb.GatherState) error {
	if f.UpsertErr != nil {
		return f.UpsertErr
	}
	f.Records[record.GuildID] = record
	return nil
}

func (f *FakeGatherDB) Delete(ctx context.Context, guildID shared.GuildID) error {
	delete(f.Records, guildID)
	return nil
}

var _ gatherdb.GatherDB = (*FakeGatherDB)(nil)

// ------------------------
// Fake GuildReader
// ------------------------

type FakeGuilds struct {
	JA bool
}

func (f *FakeGuilds) IsJA(ctx context.Context, guildID shared.GuildID) (bool, error) {
	return f.JA, nil
}

var _ GuildReader = (*FakeGuilds)(nil)

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
