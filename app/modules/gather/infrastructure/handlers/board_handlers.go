package gatherhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	gatherevents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/gather/events"
)

// HandleCanRequest raises confirmed hands.
func (h *GatherHandlers) HandleCanRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleCanRequest", &gatherevents.HoursPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.HoursPayload)
			return nil, h.service.Can(ctx, *p)
		},
	)(msg)
}

// HandleTentativeRequest raises tentative hands.
func (h *GatherHandlers) HandleTentativeRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleTentativeRequest", &gatherevents.HoursPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.HoursPayload)
			return nil, h.service.Tentative(ctx, *p)
		},
	)(msg)
}

// HandleDropRequest lowers hands.
func (h *GatherHandlers) HandleDropRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleDropRequest", &gatherevents.HoursPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.HoursPayload)
			return nil, h.service.Drop(ctx, *p)
		},
	)(msg)
}

// HandleOutRequest removes hours from the board.
func (h *GatherHandlers) HandleOutRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleOutRequest", &gatherevents.HoursPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.HoursPayload)
			return nil, h.service.Out(ctx, *p)
		},
	)(msg)
}

// HandleClearRequest archives the war list and resets the board.
func (h *GatherHandlers) HandleClearRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleClearRequest", &gatherevents.ChannelPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.ChannelPayload)
			return nil, h.service.Clear(ctx, *p)
		},
	)(msg)
}

// HandleNowRequest reposts the current war list.
func (h *GatherHandlers) HandleNowRequest(msg *message.Message) ([]*message.Message, error) {
	return h.handlerWrapper("HandleNowRequest", &gatherevents.ChannelPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			p := payload.(*gatherevents.ChannelPayload)
			return nil, h.service.Now(ctx, *p)
		},
	)(msg)
}
