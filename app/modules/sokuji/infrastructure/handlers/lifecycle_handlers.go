package sokujihandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

func (h *SokujiHandlers) HandleStartRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleStartRequest",
		&sokujievents.StartPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.StartPayload)
			return nil, h.service.Start(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleEndRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleEndRequest",
		&sokujievents.ChannelPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.ChannelPayload)
			return nil, h.service.End(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleResumeRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleResumeRequest",
		&sokujievents.ChannelPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.ChannelPayload)
			return nil, h.service.Resume(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleEditRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleEditRequest",
		&sokujievents.EditPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.EditPayload)
			return nil, h.service.Edit(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleTagChangeRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleTagChangeRequest",
		&sokujievents.TagChangePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.TagChangePayload)
			return nil, h.service.ChangeTag(ctx, *p)
		},
	)(msg)
}
