package service

import (
	"context"
	"time"

	"courtside/internal/domain/entity"
)

// DispatchEvent is the wire form of an accepted intent, published to the
// event bus and consumed by the dispatch worker.
type DispatchEvent struct {
	IntentID           string            `json:"intent_id"`
	Kind               string            `json:"kind"`
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	TargetingRule      string            `json:"targeting_rule"`
	TargetUserIDs      []string          `json:"target_user_ids,omitempty"`
	TargetRole         string            `json:"target_role,omitempty"`
	CorrelatedEntityID string            `json:"correlated_entity_id,omitempty"`
	Payload            map[string]string `json:"payload,omitempty"`
	Priority           string            `json:"priority"`
	CreatedAt          string            `json:"created_at"` // RFC3339
	RequestID          string            `json:"request_id,omitempty"`
}

// NewDispatchEvent converts an intent into its published form.
func NewDispatchEvent(intent *entity.NotificationIntent, requestID string) *DispatchEvent {
	ids := make([]string, 0, len(intent.Targeting.UserIDs))
	for _, id := range intent.Targeting.UserIDs {
		ids = append(ids, id.String())
	}

	return &DispatchEvent{
		IntentID:           intent.ID.String(),
		Kind:               string(intent.Kind),
		Title:              intent.Title,
		Body:               intent.Body,
		TargetingRule:      string(intent.Targeting.Rule),
		TargetUserIDs:      ids,
		TargetRole:         intent.Targeting.Role,
		CorrelatedEntityID: intent.CorrelatedEntityID,
		Payload:            intent.Payload,
		Priority:           string(intent.Priority),
		CreatedAt:          intent.CreatedAt.UTC().Format(time.RFC3339Nano),
		RequestID:          requestID,
	}
}

// EventPublisher defines the interface for publishing dispatch events to the
// worker, either through Google Pub/Sub or a local HTTP endpoint.
type EventPublisher interface {
	// PublishDispatchEvent publishes one accepted intent for asynchronous
	// processing by the dispatch worker.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases publisher resources.
	Close() error
}
