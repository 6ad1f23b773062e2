// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"github.com/google/uuid"
)

// IntentInput carries a caller's request to notify a set of recipients.
type IntentInput struct {
	Kind               string            `json:"kind"`
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	TargetingRule      string            `json:"targeting_rule"`
	TargetUserIDs      []string          `json:"target_user_ids,omitempty"`
	TargetRole         string            `json:"target_role,omitempty"`
	CorrelatedEntityID string            `json:"correlated_entity_id,omitempty"`
	Payload            map[string]string `json:"payload,omitempty"`
	Priority           string            `json:"priority,omitempty"`
}

// DispatchUsecase defines the intent intake and dispatch orchestration use cases
type DispatchUsecase interface {
	// SubmitIntent validates the input, persists an intent record in state
	// created, and publishes a dispatch event for asynchronous processing.
	// Returns the accepted intent; delivery happens in the worker.
	SubmitIntent(ctx context.Context, input *IntentInput, requestID string) (*entity.NotificationIntent, error)

	// ProcessDispatch runs one intent through the full dispatch pipeline:
	// resolve recipients, reserve delivery keys, deliver on every channel,
	// record outcomes, and reap permanently invalid addresses.
	ProcessDispatch(ctx context.Context, event *service.DispatchEvent) error

	// GetIntentRecord retrieves the dispatch record of one intent, including
	// its state and aggregate counts.
	GetIntentRecord(ctx context.Context, id uuid.UUID) (*entity.IntentRecord, error)
}
