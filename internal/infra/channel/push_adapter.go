// Package channel contains the per-channel delivery adapters used by the
// dispatch orchestrator.
package channel

import (
	"context"
	"log/slog"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"github.com/pkg/errors"
)

// multicastLimit is the provider's hard cap on addresses per send call.
const multicastLimit = 500

// pushAdapter delivers to mobile device tokens through the push provider.
type pushAdapter struct {
	provider service.PushProvider
	logger   *slog.Logger
}

// NewPushAdapter is the constructor for pushAdapter.
func NewPushAdapter(provider service.PushProvider, logger *slog.Logger) service.ChannelAdapter {
	return &pushAdapter{
		provider: provider,
		logger:   logger,
	}
}

// Channel identifies which channel this adapter serves.
func (a *pushAdapter) Channel() entity.Channel {
	return entity.ChannelPush
}

// Deliver multicasts the message to every recipient's device tokens.
func (a *pushAdapter) Deliver(ctx context.Context, msg *service.Message, recipients []service.Recipient) (*service.DeliveryResult, error) {
	return deliverMulticast(ctx, a.provider, a.logger, entity.ChannelPush, msg, recipients)
}

// deliverMulticast flattens recipient addresses, sends them in chunks of at
// most multicastLimit, and collects per-address outcomes. A provider error on
// one chunk fails that chunk's addresses (reason timeout when the intent
// deadline expired, provider-error otherwise) instead of aborting the
// remaining chunks.
func deliverMulticast(ctx context.Context, provider service.PushProvider, logger *slog.Logger, channel entity.Channel, msg *service.Message, recipients []service.Recipient) (*service.DeliveryResult, error) {
	if msg == nil {
		return nil, errors.New("message is required")
	}

	addresses := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		addresses = append(addresses, recipient.Addresses...)
	}

	result := &service.DeliveryResult{
		PerAddress: make(map[string]service.AddressOutcome, len(addresses)),
	}
	if len(addresses) == 0 {
		return result, nil
	}

	if provider == nil {
		// The API binary wires adapters without Firebase credentials; those
		// sends fail as provider outcomes instead of panicking.
		logger.Error("Push provider not configured",
			slog.String("channel", string(channel)),
			slog.String("intent_id", msg.IntentID.String()),
			slog.Int("address_count", len(addresses)),
		)
		for _, address := range addresses {
			result.PerAddress[address] = service.AddressOutcome{
				Address: address,
				Success: false,
				Reason:  entity.ReasonProviderError,
			}
		}

		return result, nil
	}

	highPriority := msg.Priority == entity.PriorityHigh

	for start := 0; start < len(addresses); start += multicastLimit {
		end := min(start+multicastLimit, len(addresses))
		chunk := addresses[start:end]

		outcomes, err := provider.SendMulticast(ctx, chunk, msg.Title, msg.Body, msg.Payload, highPriority)
		if err != nil {
			logger.Error("Multicast chunk failed",
				slog.String("channel", string(channel)),
				slog.String("intent_id", msg.IntentID.String()),
				slog.Int("chunk_size", len(chunk)),
				slog.Any("error", err),
			)
			reason := entity.ReasonProviderError
			if errors.Is(err, context.DeadlineExceeded) {
				reason = entity.ReasonTimeout
			}
			for _, address := range chunk {
				result.PerAddress[address] = service.AddressOutcome{
					Address: address,
					Success: false,
					Reason:  reason,
				}
			}

			continue
		}

		for _, outcome := range outcomes {
			result.PerAddress[outcome.Address] = outcome
		}
	}

	return result, nil
}
