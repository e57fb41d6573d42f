package sokujihandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

func (h *SokujiHandlers) HandleBannerAddRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleBannerAddRequest",
		&sokujievents.BannerPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.BannerPayload)
			return nil, h.service.AddBannerUsers(ctx, *p)
		},
	)(msg)
}

func (h *SokujiHandlers) HandleBannerRemoveRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper(
		"HandleBannerRemoveRequest",
		&sokujievents.BannerPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*sokujievents.BannerPayload)
			return nil, h.service.RemoveBannerUsers(ctx, *p)
		},
	)(msg)
}
