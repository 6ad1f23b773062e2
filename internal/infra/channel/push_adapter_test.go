package channel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
	mockSvc "courtside/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testMessage(priority entity.Priority) *service.Message {
	return &service.Message{
		IntentID: uuid.New(),
		Kind:     entity.KindGameCreated,
		Title:    "New game",
		Body:     "A game opened near you",
		Priority: priority,
	}
}

func TestPushAdapter_Deliver_MergesRecipientOutcomes(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	ctx := context.Background()
	msg := testMessage(entity.PriorityNormal)

	provider.EXPECT().SendMulticast(ctx, []string{"token-1", "token-2"}, msg.Title, msg.Body, mock.Anything, false).
		Return([]service.AddressOutcome{
			{Address: "token-1", Success: true},
			{Address: "token-2", Success: false, Reason: entity.ReasonInvalidAddress},
		}, nil)

	result, err := adapter.Deliver(ctx, msg, []service.Recipient{
		{UserID: uuid.New(), Addresses: []string{"token-1"}},
		{UserID: uuid.New(), Addresses: []string{"token-2"}},
	})

	require.NoError(t, err)
	require.Len(t, result.PerAddress, 2)
	assert.True(t, result.PerAddress["token-1"].Success)
	assert.Equal(t, entity.ReasonInvalidAddress, result.PerAddress["token-2"].Reason)
}

func TestPushAdapter_Deliver_ChunksAtMulticastLimit(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	ctx := context.Background()
	msg := testMessage(entity.PriorityHigh)

	addresses := make([]string, 0, 600)
	for i := 0; i < 600; i++ {
		addresses = append(addresses, fmt.Sprintf("token-%d", i))
	}

	provider.EXPECT().SendMulticast(ctx, mock.Anything, msg.Title, msg.Body, mock.Anything, true).
		RunAndReturn(func(_ context.Context, chunk []string, _, _ string, _ map[string]string, _ bool) ([]service.AddressOutcome, error) {
			assert.LessOrEqual(t, len(chunk), multicastLimit)

			outcomes := make([]service.AddressOutcome, 0, len(chunk))
			for _, address := range chunk {
				outcomes = append(outcomes, service.AddressOutcome{Address: address, Success: true})
			}

			return outcomes, nil
		}).Times(2)

	result, err := adapter.Deliver(ctx, msg, []service.Recipient{
		{UserID: uuid.New(), Addresses: addresses},
	})

	require.NoError(t, err)
	assert.Len(t, result.PerAddress, 600)
}

func TestPushAdapter_Deliver_ChunkErrorFailsOnlyItsChunk(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	ctx := context.Background()
	msg := testMessage(entity.PriorityNormal)

	addresses := make([]string, 0, 501)
	for i := 0; i < 501; i++ {
		addresses = append(addresses, fmt.Sprintf("token-%d", i))
	}

	provider.EXPECT().SendMulticast(ctx, mock.Anything, msg.Title, msg.Body, mock.Anything, false).
		Return(nil, errors.New("fcm unreachable")).Once()
	provider.EXPECT().SendMulticast(ctx, mock.Anything, msg.Title, msg.Body, mock.Anything, false).
		Return([]service.AddressOutcome{{Address: "token-500", Success: true}}, nil).Once()

	result, err := adapter.Deliver(ctx, msg, []service.Recipient{
		{UserID: uuid.New(), Addresses: addresses},
	})

	require.NoError(t, err)
	require.Len(t, result.PerAddress, 501)
	assert.Equal(t, entity.ReasonProviderError, result.PerAddress["token-0"].Reason)
	assert.False(t, result.PerAddress["token-499"].Success)
	assert.True(t, result.PerAddress["token-500"].Success)
}

func TestPushAdapter_Deliver_NilProviderFailsAddresses(t *testing.T) {
	adapter := NewPushAdapter(nil, testLogger())

	msg := testMessage(entity.PriorityNormal)

	result, err := adapter.Deliver(context.Background(), msg, []service.Recipient{
		{UserID: uuid.New(), Addresses: []string{"token-1", "token-2"}},
	})

	require.NoError(t, err)
	require.Len(t, result.PerAddress, 2)
	for _, outcome := range result.PerAddress {
		assert.False(t, outcome.Success)
		assert.Equal(t, entity.ReasonProviderError, outcome.Reason)
	}
}

func TestPushAdapter_Deliver_DeadlineExpiryIsTimeout(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	ctx := context.Background()
	msg := testMessage(entity.PriorityNormal)

	provider.EXPECT().SendMulticast(ctx, []string{"token-1"}, msg.Title, msg.Body, mock.Anything, false).
		Return(nil, errors.Wrap(context.DeadlineExceeded, "multicast send"))

	result, err := adapter.Deliver(ctx, msg, []service.Recipient{
		{UserID: uuid.New(), Addresses: []string{"token-1"}},
	})

	require.NoError(t, err)
	require.Len(t, result.PerAddress, 1)
	assert.Equal(t, entity.ReasonTimeout, result.PerAddress["token-1"].Reason)
}

func TestPushAdapter_Deliver_NoAddresses(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	result, err := adapter.Deliver(context.Background(), testMessage(entity.PriorityNormal), nil)

	require.NoError(t, err)
	assert.Empty(t, result.PerAddress)
}

func TestPushAdapter_Deliver_NilMessage(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)
	adapter := NewPushAdapter(provider, testLogger())

	_, err := adapter.Deliver(context.Background(), nil, nil)

	require.Error(t, err)
}

func TestInAppAdapter_Deliver_AcknowledgesEveryRecipient(t *testing.T) {
	adapter := NewInAppAdapter(testLogger())

	first := uuid.New()
	second := uuid.New()

	result, err := adapter.Deliver(context.Background(), testMessage(entity.PriorityNormal), []service.Recipient{
		{UserID: first},
		{UserID: second},
	})

	require.NoError(t, err)
	require.Len(t, result.PerUser, 2)
	assert.True(t, result.PerUser[first].Success)
	assert.True(t, result.PerUser[second].Success)
}

func TestAdapterChannels(t *testing.T) {
	provider := mockSvc.NewMockPushProvider(t)

	assert.Equal(t, entity.ChannelPush, NewPushAdapter(provider, testLogger()).Channel())
	assert.Equal(t, entity.ChannelWebPush, NewWebPushAdapter(provider, testLogger()).Channel())
	assert.Equal(t, entity.ChannelInApp, NewInAppAdapter(testLogger()).Channel())
}
