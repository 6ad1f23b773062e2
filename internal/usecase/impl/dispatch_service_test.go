package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtside/config"
	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	"courtside/internal/domain/service"
	mockRepo "courtside/internal/mocks/repository"
	mockSvc "courtside/internal/mocks/service"
	mockUC "courtside/internal/mocks/usecase"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDispatchConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dispatch = &config.DispatchConfig{
		FanoutLimit:   4,
		IntentTimeout: time.Minute,
	}
	cfg.Ledger = &config.LedgerConfig{
		Window:       5 * time.Minute,
		SafetyMargin: 24 * time.Hour,
	}

	return cfg
}

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockDispatchRepository,
	*mockRepo.MockRegistrationRepository,
	*mockRepo.MockLedgerRepository,
	*mockUC.MockRecipientResolver,
	*mockSvc.MockChannelAdapter,
	*mockSvc.MockChannelAdapter,
	*mockSvc.MockEventPublisher,
) {
	dispatchRepo := mockRepo.NewMockDispatchRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	ledger := mockRepo.NewMockLedgerRepository(t)
	resolver := mockUC.NewMockRecipientResolver(t)
	pushAdapter := mockSvc.NewMockChannelAdapter(t)
	inappAdapter := mockSvc.NewMockChannelAdapter(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pushAdapter.EXPECT().Channel().Return(entity.ChannelPush)
	inappAdapter.EXPECT().Channel().Return(entity.ChannelInApp)

	svc := NewDispatchService(
		testDispatchConfig(),
		dispatchRepo,
		registrationRepo,
		ledger,
		resolver,
		[]service.ChannelAdapter{pushAdapter, inappAdapter},
		publisher,
		logger,
	)

	return svc, dispatchRepo, registrationRepo, ledger, resolver, pushAdapter, inappAdapter, publisher
}

func testRecipient(userID uuid.UUID, pushTokens ...string) *usecase.ResolvedRecipient {
	return &usecase.ResolvedRecipient{
		Registration: &entity.RecipientRegistration{
			UserID: userID,
			AddressesByChannel: map[entity.Channel][]string{
				entity.ChannelPush: pushTokens,
			},
		},
	}
}

func testDispatchEvent(userID uuid.UUID) *service.DispatchEvent {
	intent := &entity.NotificationIntent{
		ID:    uuid.New(),
		Kind:  entity.KindGameCreated,
		Title: "New game",
		Body:  "A game opened near you",
		Targeting: entity.Targeting{
			Rule:    entity.TargetUserID,
			UserIDs: []uuid.UUID{userID},
		},
		CorrelatedEntityID: "game-42",
		Priority:           entity.PriorityNormal,
		CreatedAt:          time.Now().UTC(),
	}

	return service.NewDispatchEvent(intent, "req-1")
}

func TestDispatchService_SubmitIntent_Success(t *testing.T) {
	svc, dispatchRepo, _, _, _, _, _, publisher := createTestDispatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	dispatchRepo.EXPECT().CreateIntentRecord(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	intent, err := svc.SubmitIntent(ctx, &usecase.IntentInput{
		Kind:          string(entity.KindGameCreated),
		Title:         "New game",
		Body:          "A game opened near you",
		TargetingRule: string(entity.TargetUserID),
		TargetUserIDs: []string{userID.String()},
	}, "req-1")

	require.NoError(t, err)
	assert.Equal(t, entity.KindGameCreated, intent.Kind)
	assert.Equal(t, entity.PriorityNormal, intent.Priority)
	assert.Equal(t, []uuid.UUID{userID}, intent.Targeting.UserIDs)
	assert.False(t, intent.CreatedAt.IsZero())
}

func TestDispatchService_SubmitIntent_InvalidKind(t *testing.T) {
	svc, _, _, _, _, _, _, _ := createTestDispatchService(t)

	_, err := svc.SubmitIntent(context.Background(), &usecase.IntentInput{
		Kind:          "weather_alert",
		Title:         "t",
		Body:          "b",
		TargetingRule: string(entity.TargetAllUsers),
	}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown intent kind")
}

func TestDispatchService_SubmitIntent_SingleUserTargetingRequiresOneID(t *testing.T) {
	svc, _, _, _, _, _, _, _ := createTestDispatchService(t)

	_, err := svc.SubmitIntent(context.Background(), &usecase.IntentInput{
		Kind:          string(entity.KindGameClosed),
		Title:         "t",
		Body:          "b",
		TargetingRule: string(entity.TargetUserID),
		TargetUserIDs: []string{uuid.New().String(), uuid.New().String()},
	}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one user ID")
}

func TestDispatchService_SubmitIntent_PublishFailureMarksIntentFailed(t *testing.T) {
	svc, dispatchRepo, _, _, _, _, _, publisher := createTestDispatchService(t)

	ctx := context.Background()

	dispatchRepo.EXPECT().CreateIntentRecord(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	dispatchRepo.EXPECT().UpdateIntentState(ctx, mock.Anything, entity.DispatchStateFailed, 0, 0, 0).Return(nil)

	_, err := svc.SubmitIntent(ctx, &usecase.IntentInput{
		Kind:          string(entity.KindCustom),
		Title:         "t",
		Body:          "b",
		TargetingRule: string(entity.TargetAllUsers),
	}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish dispatch event")
}

func TestDispatchService_ProcessDispatch_Success(t *testing.T) {
	svc, dispatchRepo, _, ledger, resolver, pushAdapter, inappAdapter, _ := createTestDispatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testDispatchEvent(userID)
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCreated}, nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateResolving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateReserving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateDelivering, 0, 0, 0).Return(nil)

	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return([]*usecase.ResolvedRecipient{testRecipient(userID, "token-1")}, nil)

	// One reservation per eligible channel: push and in-app.
	ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

	pushAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.DeliveryResult{
			PerAddress: map[string]service.AddressOutcome{
				"token-1": {Address: "token-1", Success: true},
			},
		}, nil)
	inappAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.DeliveryResult{
			PerUser: map[uuid.UUID]service.AddressOutcome{
				userID: {Success: true},
			},
		}, nil)

	var persisted []*entity.DeliveryRecord
	dispatchRepo.EXPECT().BatchCreateDeliveries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateCompleted, 2, 0, 0).Return(nil)

	err := svc.ProcessDispatch(ctx, event)

	require.NoError(t, err)
	require.Len(t, persisted, 2)
	for _, record := range persisted {
		assert.Equal(t, entity.DeliverySent, record.Status)
		assert.Equal(t, userID, record.UserID)
		assert.Equal(t, intentID, record.IntentID)
	}
}

func TestDispatchService_ProcessDispatch_SkipsCompletedIntent(t *testing.T) {
	svc, dispatchRepo, _, _, _, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	event := testDispatchEvent(uuid.New())
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCompleted}, nil)

	err := svc.ProcessDispatch(ctx, event)

	require.NoError(t, err)
}

func TestDispatchService_ProcessDispatch_DuplicateReservations(t *testing.T) {
	svc, dispatchRepo, _, ledger, resolver, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testDispatchEvent(userID)
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCreated}, nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateResolving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateReserving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateDelivering, 0, 0, 0).Return(nil)

	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return([]*usecase.ResolvedRecipient{testRecipient(userID, "token-1")}, nil)

	// Every key is already claimed, so no adapter is ever invoked.
	ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateReservation).Times(2)

	var persisted []*entity.DeliveryRecord
	dispatchRepo.EXPECT().BatchCreateDeliveries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateCompleted, 0, 0, 2).Return(nil)

	err := svc.ProcessDispatch(ctx, event)

	require.NoError(t, err)
	require.Len(t, persisted, 2)
	for _, record := range persisted {
		assert.Equal(t, entity.DeliverySkippedDuplicate, record.Status)
	}
}

func TestDispatchService_ProcessDispatch_InvalidAddressIsReapedInline(t *testing.T) {
	svc, dispatchRepo, registrationRepo, ledger, resolver, pushAdapter, inappAdapter, _ := createTestDispatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testDispatchEvent(userID)
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCreated}, nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateResolving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateReserving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateDelivering, 0, 0, 0).Return(nil)

	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return([]*usecase.ResolvedRecipient{testRecipient(userID, "dead-token")}, nil)

	ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

	pushAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.DeliveryResult{
			PerAddress: map[string]service.AddressOutcome{
				"dead-token": {Address: "dead-token", Reason: entity.ReasonInvalidAddress},
			},
		}, nil)
	inappAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.DeliveryResult{
			PerUser: map[uuid.UUID]service.AddressOutcome{
				userID: {Success: true},
			},
		}, nil)

	registrationRepo.EXPECT().RemoveAddress(mock.Anything, userID, entity.ChannelPush, "dead-token").Return(nil)

	var persisted []*entity.DeliveryRecord
	dispatchRepo.EXPECT().BatchCreateDeliveries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateCompleted, 1, 1, 0).Return(nil)

	err := svc.ProcessDispatch(ctx, event)

	require.NoError(t, err)
	require.Len(t, persisted, 2)

	byChannel := make(map[entity.Channel]*entity.DeliveryRecord, len(persisted))
	for _, record := range persisted {
		byChannel[record.Channel] = record
	}
	require.Contains(t, byChannel, entity.ChannelPush)
	require.Contains(t, byChannel, entity.ChannelInApp)
	assert.Equal(t, entity.DeliveryFailed, byChannel[entity.ChannelPush].Status)
	assert.Equal(t, entity.ReasonInvalidAddress, byChannel[entity.ChannelPush].Reason)
	assert.True(t, byChannel[entity.ChannelPush].PermanentFailure())
	assert.Equal(t, entity.DeliverySent, byChannel[entity.ChannelInApp].Status)
}

func TestDispatchService_ProcessDispatch_AdapterErrorFailsOnlyItsChannel(t *testing.T) {
	svc, dispatchRepo, _, ledger, resolver, pushAdapter, inappAdapter, _ := createTestDispatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testDispatchEvent(userID)
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCreated}, nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateResolving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateReserving, 0, 0, 0).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateDelivering, 0, 0, 0).Return(nil)

	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return([]*usecase.ResolvedRecipient{testRecipient(userID, "token-1")}, nil)

	ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

	pushAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unreachable"))
	inappAdapter.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.DeliveryResult{
			PerUser: map[uuid.UUID]service.AddressOutcome{
				userID: {Success: true},
			},
		}, nil)

	var persisted []*entity.DeliveryRecord
	dispatchRepo.EXPECT().BatchCreateDeliveries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).Return(nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateCompleted, 1, 1, 0).Return(nil)

	err := svc.ProcessDispatch(ctx, event)

	require.NoError(t, err)
	require.Len(t, persisted, 2)

	byChannel := make(map[entity.Channel]*entity.DeliveryRecord, len(persisted))
	for _, record := range persisted {
		byChannel[record.Channel] = record
	}
	assert.Equal(t, entity.DeliveryFailed, byChannel[entity.ChannelPush].Status)
	assert.Equal(t, entity.ReasonProviderError, byChannel[entity.ChannelPush].Reason)
	assert.Equal(t, entity.DeliverySent, byChannel[entity.ChannelInApp].Status)
}

func TestDispatchService_ProcessDispatch_ResolverFailureMarksIntentFailed(t *testing.T) {
	svc, dispatchRepo, _, _, resolver, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	event := testDispatchEvent(uuid.New())
	intentID := uuid.MustParse(event.IntentID)

	dispatchRepo.EXPECT().FindIntentRecordByID(ctx, intentID).
		Return(&entity.IntentRecord{ID: intentID, State: entity.DispatchStateCreated}, nil)
	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateResolving, 0, 0, 0).Return(nil)

	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, errors.New("db gone"))

	dispatchRepo.EXPECT().UpdateIntentState(mock.Anything, intentID, entity.DispatchStateFailed, 0, 0, 0).Return(nil)

	err := svc.ProcessDispatch(ctx, event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve recipients")
}
