package impl

import (
	"context"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	"courtside/internal/usecase"

	"github.com/google/uuid"
)

// defaultInboxPageSize caps unbounded inbox queries.
const defaultInboxPageSize = 50

type inboxService struct {
	dispatchRepo repository.DispatchRepository
}

// NewInboxService creates a new inbox service instance
func NewInboxService(dispatchRepo repository.DispatchRepository) usecase.InboxUsecase {
	return &inboxService{
		dispatchRepo: dispatchRepo,
	}
}

// ListInbox pages through the recipient's in-app notifications, newest first.
func (s *inboxService) ListInbox(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryRecord, error) {
	if limit <= 0 || limit > defaultInboxPageSize {
		limit = defaultInboxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return s.dispatchRepo.FindInboxByUser(ctx, userID, limit, offset)
}

// MarkRead flips the read flag on one notification owned by the user.
func (s *inboxService) MarkRead(ctx context.Context, userID, deliveryID uuid.UUID) error {
	return s.dispatchRepo.MarkRead(ctx, userID, deliveryID)
}

// CountUnread returns the number of unread notifications.
func (s *inboxService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.dispatchRepo.CountUnread(ctx, userID)
}
