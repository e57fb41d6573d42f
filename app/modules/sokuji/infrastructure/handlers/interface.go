package sokujihandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers is the set of event handlers registered by the sokuji
// router.
type Handlers interface {
	HandleStartRequest(msg *message.Message) ([]*message.Message, error)
	HandleEndRequest(msg *message.Message) ([]*message.Message, error)
	HandleResumeRequest(msg *message.Message) ([]*message.Message, error)
	HandleEditRequest(msg *message.Message) ([]*message.Message, error)
	HandleTagChangeRequest(msg *message.Message) ([]*message.Message, error)

	HandleRaceAddRequest(msg *message.Message) ([]*message.Message, error)
	HandleRaceDeleteRequest(msg *message.Message) ([]*message.Message, error)
	HandleRaceEditRequest(msg *message.Message) ([]*message.Message, error)
	HandlePenaltyRequest(msg *message.Message) ([]*message.Message, error)
	HandlePenaltyClearRequest(msg *message.Message) ([]*message.Message, error)

	HandleBannerAddRequest(msg *message.Message) ([]*message.Message, error)
	HandleBannerRemoveRequest(msg *message.Message) ([]*message.Message, error)

	HandleResultRegisterRequest(msg *message.Message) ([]*message.Message, error)

	HandleChatLine(msg *message.Message) ([]*message.Message, error)
	HandleMessagePosted(msg *message.Message) ([]*message.Message, error)
}
