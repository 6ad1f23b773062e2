// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for dispatch persistence.
var (
	// ErrIntentNotFound is returned when an intent record is not found.
	ErrIntentNotFound = errors.New("intent record not found")
	// ErrDeliveryNotFound is returned when a delivery record is not found.
	ErrDeliveryNotFound = errors.New("delivery record not found")
)

// DispatchRepository defines the interface for intent and delivery record
// storage. The orchestrator is the sole writer of delivery records.
type DispatchRepository interface {
	// CreateIntentRecord persists the dispatch record for a new intent.
	CreateIntentRecord(ctx context.Context, record *entity.IntentRecord) error

	// FindIntentRecordByID retrieves one intent's dispatch record.
	FindIntentRecordByID(ctx context.Context, id uuid.UUID) (*entity.IntentRecord, error)

	// UpdateIntentState transitions the dispatch state machine and stores the
	// aggregate counts.
	UpdateIntentState(ctx context.Context, id uuid.UUID, state entity.DispatchState, success, failure, duplicate int) error

	// BatchCreateDeliveries persists delivery records in batches.
	BatchCreateDeliveries(ctx context.Context, records []*entity.DeliveryRecord) error

	// FindInboxByUser pages through a recipient's in-app deliveries, newest
	// first.
	FindInboxByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryRecord, error)

	// MarkRead flips the read flag on one in-app delivery owned by the user.
	MarkRead(ctx context.Context, userID, deliveryID uuid.UUID) error

	// CountUnread returns the number of unread in-app deliveries for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// PurgeDeliveriesBefore removes delivery records attempted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeliveriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
