package usecase

import (
	"context"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxUsecase defines the in-app inbox use cases built on top of the
// delivery records of the in-app channel.
type InboxUsecase interface {
	// ListInbox pages through the recipient's in-app notifications, newest
	// first.
	ListInbox(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryRecord, error)

	// MarkRead flips the read flag on one notification. Returns
	// repository.ErrDeliveryNotFound when the notification does not exist or
	// belongs to another user.
	MarkRead(ctx context.Context, userID, deliveryID uuid.UUID) error

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
