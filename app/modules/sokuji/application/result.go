package sokujiservice

import (
	"context"

	sokujitypes "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/domain/types"
	sokujievents "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/events"
)

// RegisterResult validates a nominated summary and forwards it to the
// results module for durable registration. Summaries that do not parse
// back into match state are refused before they reach storage.
func (s *SokujiService) RegisterResult(ctx context.Context, payload sokujievents.ResultRegisterPayload) error {
	return s.serviceWrapper(ctx, "RegisterResult", "", func(ctx context.Context) error {
		if _, err := sokujitypes.FromSummary(payload.Summary); err != nil {
			return err
		}
		return s.publish(ctx, sokujievents.ResultRegisteredTopic, payload)
	})
}
