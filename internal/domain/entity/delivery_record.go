// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the terminal (or transient) state of one delivery attempt.
type DeliveryStatus string

const (
	DeliveryPending          DeliveryStatus = "pending"
	DeliverySent             DeliveryStatus = "sent"
	DeliveryFailed           DeliveryStatus = "failed"
	DeliverySkippedDuplicate DeliveryStatus = "skipped_duplicate"
)

// FailureReason codes recorded on failed deliveries. InvalidAddress marks a
// permanent address failure and triggers the reaper; the others are transient
// and never cause address removal.
const (
	ReasonInvalidAddress   = "invalid-address"
	ReasonProviderError    = "provider-error"
	ReasonPermissionDenied = "permission-denied"
	ReasonTimeout          = "timeout"
)

// DeliveryRecord is the unit of idempotency: one per (intent, recipient,
// channel) actually dispatched. Immutable after creation except for the
// read flag (in-app channel) and the pending-to-terminal status transition.
type DeliveryRecord struct {
	ID          uuid.UUID         `json:"id"`
	IntentID    uuid.UUID         `json:"intent_id"`
	UserID      uuid.UUID         `json:"user_id"`
	Channel     Channel           `json:"channel"`
	Address     string            `json:"address,omitempty"`
	Status      DeliveryStatus    `json:"status"`
	Reason      string            `json:"reason,omitempty"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Payload     map[string]string `json:"payload,omitempty"`
	Read        bool              `json:"read"`
	AttemptedAt time.Time         `json:"attempted_at"`
}

// PermanentFailure reports whether the record's failure reason indicates the
// address is permanently undeliverable.
func (r *DeliveryRecord) PermanentFailure() bool {
	return r.Status == DeliveryFailed && r.Reason == ReasonInvalidAddress
}
