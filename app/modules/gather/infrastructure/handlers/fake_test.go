package gatherhandlers

import (
	"context"

	gatherservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/application"
	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
)

// FakeGatherService records calls and returns configurable errors.
type FakeGatherService struct {
	Calls []string

	CanFunc       func(ctx context.Context, payload gatherevents.HoursPayload) error
	TentativeFunc func(ctx context.Context, payload gatherevents.HoursPayload) error
	DropFunc      func(ctx context.Context, payload gatherevents.HoursPayload) error
	OutFunc       func(ctx context.Context, payload gatherevents.HoursPayload) error
	ClearFunc     func(ctx context.Context, payload gatherevents.ChannelPayload) error
	NowFunc       func(ctx context.Context, payload gatherevents.ChannelPayload) error
}

func (f *FakeGatherService) Can(ctx context.Context, payload gatherevents.HoursPayload) error {
	f.Calls = append(f.Calls, "Can")
	if f.CanFunc != nil {
		return f.CanFunc(ctx, payload)
	}
	return nil
}

func (f *FakeGatherService) Tentative(ctx context.Context, payload gatherevents.HoursPayload) error {
	f.Calls = append(f.Calls, "Tentative")
	if f.TentativeFunc != nil {
		return f.TentativeFunc(ctx, payload)
	}
	return nil
}

func (f *FakeGatherService) Drop(ctx context.Context, payload gatherevents.HoursPayload) error {
	f.Calls = append(f.Calls, "Drop")
	if f.DropFunc != nil {
		return f.DropFunc(ctx, payload)
	}
	return nil
}

func (f *FakeGatherService) Out(ctx context.Context, payload gatherevents.HoursPayload) error {
	f.Calls = append(f.Calls, "Out")
	if f.OutFunc != nil {
		return f.OutFunc(ctx, payload)
	}
	return nil
}

func (f *FakeGatherService) Clear(ctx context.Context, payload gatherevents.ChannelPayload) error {
	f.Calls = append(f.Calls, "Clear")
	if f.ClearFunc != nil {
		return f.ClearFunc(ctx, payload)
	}
	return nil
}

func (f *FakeGatherService) Now(ctx context.Context, payload gatherevents.ChannelPayload) error {
	f.Calls = append(f.Calls, "Now")
	if f.NowFunc != nil {
		return f.NowFunc(ctx, payload)
	}
	return nil
}

var _ gatherservice.Service = (*FakeGatherService)(nil)
