package channel

import (
	"context"
	"log/slog"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
)

// webPushAdapter delivers to browser-registered web tokens. Browser pushes
// ride the same provider as mobile pushes; a permission revocation in the
// browser surfaces as a permanently invalid token.
type webPushAdapter struct {
	provider service.PushProvider
	logger   *slog.Logger
}

// NewWebPushAdapter is the constructor for webPushAdapter.
func NewWebPushAdapter(provider service.PushProvider, logger *slog.Logger) service.ChannelAdapter {
	return &webPushAdapter{
		provider: provider,
		logger:   logger,
	}
}

// Channel identifies which channel this adapter serves.
func (a *webPushAdapter) Channel() entity.Channel {
	return entity.ChannelWebPush
}

// Deliver multicasts the message to every recipient's web tokens.
func (a *webPushAdapter) Deliver(ctx context.Context, msg *service.Message, recipients []service.Recipient) (*service.DeliveryResult, error) {
	return deliverMulticast(ctx, a.provider, a.logger, entity.ChannelWebPush, msg, recipients)
}
