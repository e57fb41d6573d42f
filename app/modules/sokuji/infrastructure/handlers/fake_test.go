package sokujihandlers

import (
	"context"

	sokujiservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/application"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

// ------------------------
// Fake Sokuji Service
// ------------------------

// FakeSokujiService is a programmable stub for the sokujiservice.Service
// interface. Each method records its name and delegates to an optional
// override.
type FakeSokujiService struct {
	trace []string

	StartFunc               func(ctx context.Context, payload sokujievents.StartPayload) error
	EndFunc                 func(ctx context.Context, payload sokujievents.ChannelPayload) error
	ResumeFunc              func(ctx context.Context, payload sokujievents.ChannelPayload) error
	EditFunc                func(ctx context.Context, payload sokujievents.EditPayload) error
	ChangeTagFunc           func(ctx context.Context, payload sokujievents.TagChangePayload) error
	AddRaceFunc             func(ctx context.Context, payload sokujievents.RaceAddPayload) error
	BackFunc                func(ctx context.Context, payload sokujievents.RaceDeletePayload) error
	EditRaceFunc            func(ctx context.Context, payload sokujievents.RaceEditPayload) error
	AddPenaltyFunc          func(ctx context.Context, payload sokujievents.PenaltyPayload) error
	ClearPenaltyFunc        func(ctx context.Context, payload sokujievents.PenaltyClearPayload) error
	AddBannerUsersFunc      func(ctx context.Context, payload sokujievents.BannerPayload) error
	RemoveBannerUsersFunc   func(ctx context.Context, payload sokujievents.BannerPayload) error
	RegisterResultFunc      func(ctx context.Context, payload sokujievents.ResultRegisterPayload) error
	HandleChatLineFunc      func(ctx context.Context, payload sokujievents.ChatLinePayload) error
	HandleMessagePostedFunc func(ctx context.Context, payload sokujievents.MessagePostedPayload) error
}

func NewFakeSokujiService() *FakeSokujiService {
	return &FakeSokujiService{trace: []string{}}
}

func (f *FakeSokujiService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeSokujiService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSokujiService) Start(ctx context.Context, payload sokujievents.StartPayload) error {
	f.record("Start")
	if f.StartFunc != nil {
		return f.StartFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) End(ctx context.Context, payload sokujievents.ChannelPayload) error {
	f.record("End")
	if f.EndFunc != nil {
		return f.EndFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) Resume(ctx context.Context, payload sokujievents.ChannelPayload) error {
	f.record("Resume")
	if f.ResumeFunc != nil {
		return f.ResumeFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) Edit(ctx context.Context, payload sokujievents.EditPayload) error {
	f.record("Edit")
	if f.EditFunc != nil {
		return f.EditFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) ChangeTag(ctx context.Context, payload sokujievents.TagChangePayload) error {
	f.record("ChangeTag")
	if f.ChangeTagFunc != nil {
		return f.ChangeTagFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) AddRace(ctx context.Context, payload sokujievents.RaceAddPayload) error {
	f.record("AddRace")
	if f.AddRaceFunc != nil {
		return f.AddRaceFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) Back(ctx context.Context, payload sokujievents.RaceDeletePayload) error {
	f.record("Back")
	if f.BackFunc != nil {
		return f.BackFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) EditRace(ctx context.Context, payload sokujievents.RaceEditPayload) error {
	f.record("EditRace")
	if f.EditRaceFunc != nil {
		return f.EditRaceFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) AddPenalty(ctx context.Context, payload sokujievents.PenaltyPayload) error {
	f.record("AddPenalty")
	if f.AddPenaltyFunc != nil {
		return f.AddPenaltyFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) ClearPenalty(ctx context.Context, payload sokujievents.PenaltyClearPayload) error {
	f.record("ClearPenalty")
	if f.ClearPenaltyFunc != nil {
		return f.ClearPenaltyFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) AddBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error {
	f.record("AddBannerUsers")
	if f.AddBannerUsersFunc != nil {
		return f.AddBannerUsersFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) RemoveBannerUsers(ctx context.Context, payload sokujievents.BannerPayload) error {
	f.record("RemoveBannerUsers")
	if f.RemoveBannerUsersFunc != nil {
		return f.RemoveBannerUsersFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) RegisterResult(ctx context.Context, payload sokujievents.ResultRegisterPayload) error {
	f.record("RegisterResult")
	if f.RegisterResultFunc != nil {
		return f.RegisterResultFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) HandleChatLine(ctx context.Context, payload sokujievents.ChatLinePayload) error {
	f.record("HandleChatLine")
	if f.HandleChatLineFunc != nil {
		return f.HandleChatLineFunc(ctx, payload)
	}
	return nil
}

func (f *FakeSokujiService) HandleMessagePosted(ctx context.Context, payload sokujievents.MessagePostedPayload) error {
	f.record("HandleMessagePosted")
	if f.HandleMessagePostedFunc != nil {
		return f.HandleMessagePostedFunc(ctx, payload)
	}
	return nil
}

// Ensure the fake satisfies the Service interface
var _ sokujiservice.Service = (*FakeSokujiService)(nil)
