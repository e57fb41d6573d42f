package gatherhandlers

import "github.com/ThreeDotsLabs/watermill/message"

// Handlers is the gather module's event handler surface.
type Handlers interface {
	HandleCanRequest(msg *message.Message) ([]*message.Message, error)
	HandleTentativeRequest(msg *message.Message) ([]*message.Message, error)
	HandleDropRequest(msg *message.Message) ([]*message.Message, error)
	HandleOutRequest(msg *message.Message) ([]*message.Message, error)
	HandleClearRequest(msg *message.Message) ([]*message.Message, error)
	HandleNowRequest(msg *message.Message) ([]*message.Message, error)
}
