package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtside/config"
	"courtside/internal/domain/entity"
	mockRepo "courtside/internal/mocks/repository"
	mockSvc "courtside/internal/mocks/service"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReaperService(t *testing.T) (
	usecase.ReaperUsecase,
	*mockRepo.MockRegistrationRepository,
	*mockRepo.MockDispatchRepository,
	*mockRepo.MockLedgerRepository,
	*mockSvc.MockPushProvider,
) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	ledger := mockRepo.NewMockLedgerRepository(t)
	pushProvider := mockSvc.NewMockPushProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Sweep = &config.SweepConfig{
		Interval:      24 * time.Hour,
		BatchSize:     100,
		RetentionDays: 30,
	}

	svc := NewReaperService(cfg, registrationRepo, dispatchRepo, ledger, pushProvider, logger)

	return svc, registrationRepo, dispatchRepo, ledger, pushProvider
}

func testAddressBatch(channel entity.Channel, count int) []*entity.ChannelAddress {
	batch := make([]*entity.ChannelAddress, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, &entity.ChannelAddress{
			UserID:  uuid.New(),
			Channel: channel,
			Address: fmt.Sprintf("%s-token-%d", channel, i),
		})
	}

	return batch
}

func TestReaperService_Sweep_WalksAddressesInBatches(t *testing.T) {
	svc, registrationRepo, dispatchRepo, ledger, pushProvider := createTestReaperService(t)

	ctx := context.Background()

	// 250 push addresses come back in pages of 100, 100, and 50.
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 0).
		Return(testAddressBatch(entity.ChannelPush, 100), nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 100).
		Return(testAddressBatch(entity.ChannelPush, 100), nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 200).
		Return(testAddressBatch(entity.ChannelPush, 50), nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelWebPush, 100, 0).
		Return(nil, nil)

	pushProvider.EXPECT().CheckAddresses(ctx, mock.Anything).Return(nil, nil).Times(3)

	ledger.EXPECT().PurgeExpired(ctx, mock.Anything).Return(int64(7), nil)
	dispatchRepo.EXPECT().PurgeDeliveriesBefore(ctx, mock.Anything).Return(int64(12), nil)

	report, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 250, report.AddressesChecked)
	assert.Equal(t, 0, report.AddressesReaped)
	assert.Equal(t, int64(7), report.LedgerPurged)
	assert.Equal(t, int64(12), report.DeliveriesPurged)
}

func TestReaperService_Sweep_RemovesInvalidAddresses(t *testing.T) {
	svc, registrationRepo, dispatchRepo, ledger, pushProvider := createTestReaperService(t)

	ctx := context.Background()
	batch := testAddressBatch(entity.ChannelPush, 3)

	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 0).Return(batch, nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelWebPush, 100, 0).Return(nil, nil)

	pushProvider.EXPECT().CheckAddresses(ctx, mock.Anything).
		Return([]string{batch[0].Address, batch[2].Address}, nil)

	registrationRepo.EXPECT().RemoveAddress(ctx, batch[0].UserID, entity.ChannelPush, batch[0].Address).Return(nil)
	registrationRepo.EXPECT().RemoveAddress(ctx, batch[2].UserID, entity.ChannelPush, batch[2].Address).Return(nil)

	ledger.EXPECT().PurgeExpired(ctx, mock.Anything).Return(int64(0), nil)
	dispatchRepo.EXPECT().PurgeDeliveriesBefore(ctx, mock.Anything).Return(int64(0), nil)

	report, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, report.AddressesChecked)
	assert.Equal(t, 2, report.AddressesReaped)
}

func TestReaperService_Sweep_RemovalFailureKeepsRowInPage(t *testing.T) {
	svc, registrationRepo, dispatchRepo, ledger, pushProvider := createTestReaperService(t)

	ctx := context.Background()
	batch := testAddressBatch(entity.ChannelPush, 100)

	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 0).Return(batch, nil)
	// Two rows were invalid but only one removal succeeded, so the walk
	// resumes at 99 rather than 98 and the stuck row is re-checked next pass.
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 99).Return(nil, nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelWebPush, 100, 0).Return(nil, nil)

	pushProvider.EXPECT().CheckAddresses(ctx, mock.Anything).
		Return([]string{batch[0].Address, batch[1].Address}, nil)

	registrationRepo.EXPECT().RemoveAddress(ctx, batch[0].UserID, entity.ChannelPush, batch[0].Address).
		Return(errors.New("db gone"))
	registrationRepo.EXPECT().RemoveAddress(ctx, batch[1].UserID, entity.ChannelPush, batch[1].Address).
		Return(nil)

	ledger.EXPECT().PurgeExpired(ctx, mock.Anything).Return(int64(0), nil)
	dispatchRepo.EXPECT().PurgeDeliveriesBefore(ctx, mock.Anything).Return(int64(0), nil)

	report, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 100, report.AddressesChecked)
	assert.Equal(t, 1, report.AddressesReaped)
}

func TestReaperService_Sweep_BatchErrorSkipsBatchAndContinues(t *testing.T) {
	svc, registrationRepo, dispatchRepo, ledger, pushProvider := createTestReaperService(t)

	ctx := context.Background()

	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 0).
		Return(testAddressBatch(entity.ChannelPush, 100), nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 100).
		Return(testAddressBatch(entity.ChannelPush, 20), nil)
	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelWebPush, 100, 0).Return(nil, nil)

	// First batch fails wholesale; its addresses are left for the next sweep.
	pushProvider.EXPECT().CheckAddresses(ctx, mock.Anything).
		Return(nil, errors.New("fcm unreachable")).Once()
	pushProvider.EXPECT().CheckAddresses(ctx, mock.Anything).Return(nil, nil).Once()

	ledger.EXPECT().PurgeExpired(ctx, mock.Anything).Return(int64(0), nil)
	dispatchRepo.EXPECT().PurgeDeliveriesBefore(ctx, mock.Anything).Return(int64(0), nil)

	report, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 120, report.AddressesChecked)
	assert.Equal(t, 0, report.AddressesReaped)
}

func TestReaperService_Sweep_ListFailureAbortsSweep(t *testing.T) {
	svc, registrationRepo, _, _, _ := createTestReaperService(t)

	ctx := context.Background()

	registrationRepo.EXPECT().ListAddresses(ctx, entity.ChannelPush, 100, 0).
		Return(nil, errors.New("db gone"))

	_, err := svc.Sweep(ctx)

	require.Error(t, err)
}
