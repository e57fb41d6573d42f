package sokujihandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

func (h *SokujiHandlers) HandleRaceAddRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleRaceAddRequest",
		&sokujievents.RaceAddPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.RaceAddPayload)
			return nil, h.service.AddRace(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleRaceDeleteRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleRaceDeleteRequest",
		&sokujievents.RaceDeletePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.RaceDeletePayload)
			return nil, h.service.Back(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleRaceEditRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleRaceEditRequest",
		&sokujievents.RaceEditPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.RaceEditPayload)
			return nil, h.service.EditRace(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandlePenaltyRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandlePenaltyRequest",
		&sokujievents.PenaltyPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.PenaltyPayload)
			return nil, h.service.AddPenalty(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandlePenaltyClearRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandlePenaltyClearRequest",
		&sokujievents.PenaltyClearPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.PenaltyClearPayload)
			return nil, h.service.ClearPenalty(ctx, *p)
		},
	)(msg)
}
