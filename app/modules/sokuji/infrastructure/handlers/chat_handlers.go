package sokujihandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

func (h *SokujiHandlers) HandleChatLine(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleChatLine",
		&sokujievents.ChatLinePayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.ChatLinePayload)
			return nil, h.service.HandleChatLine(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleMessagePosted(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleMessagePosted",
		&sokujievents.MessagePostedPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.MessagePostedPayload)
			return nil, h.service.HandleMessagePosted(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleResultRegisterRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleResultRegisterRequest",
		&sokujievents.ResultRegisterPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.ResultRegisterPayload)
			return nil, h.service.RegisterResult(ctx, *p)
		},
	)(msg)
}
