package channel

import (
	"context"
	"log/slog"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inAppAdapter serves the in-app channel. Delivery here is the persisted
// delivery record itself, which the orchestrator writes after this call, so
// the adapter only acknowledges each recipient.
type inAppAdapter struct {
	logger *slog.Logger
}

// NewInAppAdapter is the constructor for inAppAdapter.
func NewInAppAdapter(logger *slog.Logger) service.ChannelAdapter {
	return &inAppAdapter{
		logger: logger,
	}
}

// Channel identifies which channel this adapter serves.
func (a *inAppAdapter) Channel() entity.Channel {
	return entity.ChannelInApp
}

// Deliver marks every recipient as delivered. The channel has no external
// transport that can fail per-user.
func (a *inAppAdapter) Deliver(_ context.Context, msg *service.Message, recipients []service.Recipient) (*service.DeliveryResult, error) {
	if msg == nil {
		return nil, errors.New("message is required")
	}

	result := &service.DeliveryResult{
		PerUser: make(map[uuid.UUID]service.AddressOutcome, len(recipients)),
	}
	for _, recipient := range recipients {
		result.PerUser[recipient.UserID] = service.AddressOutcome{Success: true}
	}

	a.logger.Debug("In-app deliveries recorded",
		slog.String("intent_id", msg.IntentID.String()),
		slog.Int("recipients", len(recipients)),
	)

	return result, nil
}
