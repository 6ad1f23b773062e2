// Package push implements the PushProvider interface on Firebase Cloud
// Messaging.
package push

import (
	"context"
	"fmt"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastLimit is FCM's maximum token count per multicast request.
const multicastLimit = 500

type fcmProvider struct {
	client *messaging.Client
}

// NewFCMProvider creates a push provider backed by Firebase Cloud Messaging.
func NewFCMProvider(ctx context.Context, credentialsPath string) (service.PushProvider, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmProvider{
		client: client,
	}, nil
}

// SendMulticast sends one message to up to 500 addresses and reports a
// per-address outcome.
func (p *fcmProvider) SendMulticast(ctx context.Context, addresses []string, title, body string, data map[string]string, highPriority bool) ([]service.AddressOutcome, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	if len(addresses) > multicastLimit {
		return nil, fmt.Errorf("address count exceeds limit: %d (max %d)", len(addresses), multicastLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: addresses,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if highPriority {
		message.Android = &messaging.AndroidConfig{Priority: "high"}
	}

	response, err := p.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	outcomes := make([]service.AddressOutcome, 0, len(response.Responses))
	for idx, sendResponse := range response.Responses {
		outcome := service.AddressOutcome{Address: addresses[idx], Success: sendResponse.Error == nil}
		if sendResponse.Error != nil {
			outcome.Reason = classifySendError(sendResponse.Error)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// CheckAddresses issues a dry-run multicast that validates tokens without
// delivering anything, returning the permanently invalid ones.
func (p *fcmProvider) CheckAddresses(ctx context.Context, addresses []string) ([]string, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	if len(addresses) > multicastLimit {
		return nil, fmt.Errorf("address count exceeds limit: %d (max %d)", len(addresses), multicastLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: addresses,
		Data:   map[string]string{"sweep": "1"},
	}

	response, err := p.client.SendEachForMulticastDryRun(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to dry-run multicast: %w", err)
	}

	invalid := make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		// Only permanent token errors count; transient provider errors must
		// not cause address removal.
		if messaging.IsUnregistered(sendResponse.Error) || messaging.IsInvalidArgument(sendResponse.Error) {
			invalid = append(invalid, addresses[idx])
		}
	}

	return invalid, nil
}

// classifySendError maps provider errors to delivery failure reason codes.
func classifySendError(err error) string {
	switch {
	case messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err):
		return entity.ReasonInvalidAddress
	case messaging.IsThirdPartyAuthError(err):
		return entity.ReasonPermissionDenied
	default:
		return entity.ReasonProviderError
	}
}
