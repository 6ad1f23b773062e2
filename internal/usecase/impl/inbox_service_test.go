package impl

import (
	"context"
	"testing"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	mockRepo "courtside/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxService_ListInbox_ClampsPageSize(t *testing.T) {
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	svc := NewInboxService(dispatchRepo)

	ctx := context.Background()
	userID := uuid.New()

	// Zero, negative, and oversized limits all collapse to the default.
	dispatchRepo.EXPECT().FindInboxByUser(ctx, userID, defaultInboxPageSize, 0).
		Return([]*entity.DeliveryRecord{}, nil).Times(3)

	for _, limit := range []int{0, -5, 500} {
		_, err := svc.ListInbox(ctx, userID, limit, -1)
		require.NoError(t, err)
	}
}

func TestInboxService_ListInbox_PassesThroughValidPaging(t *testing.T) {
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	svc := NewInboxService(dispatchRepo)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.DeliveryRecord{
		{ID: uuid.New(), UserID: userID, Channel: entity.ChannelInApp, Status: entity.DeliverySent},
	}

	dispatchRepo.EXPECT().FindInboxByUser(ctx, userID, 10, 20).Return(records, nil)

	result, err := svc.ListInbox(ctx, userID, 10, 20)

	require.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestInboxService_MarkRead_NotFound(t *testing.T) {
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	svc := NewInboxService(dispatchRepo)

	ctx := context.Background()
	userID := uuid.New()
	deliveryID := uuid.New()

	dispatchRepo.EXPECT().MarkRead(ctx, userID, deliveryID).Return(repository.ErrDeliveryNotFound)

	err := svc.MarkRead(ctx, userID, deliveryID)

	require.ErrorIs(t, err, repository.ErrDeliveryNotFound)
}

func TestInboxService_CountUnread(t *testing.T) {
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	svc := NewInboxService(dispatchRepo)

	ctx := context.Background()
	userID := uuid.New()

	dispatchRepo.EXPECT().CountUnread(ctx, userID).Return(int64(4), nil)

	count, err := svc.CountUnread(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
