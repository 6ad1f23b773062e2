package impl

import (
	"context"
	"testing"

	"courtside/internal/domain/constants"
	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	mockRepo "courtside/internal/mocks/repository"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationService(t *testing.T) (
	usecase.RegistrationUsecase,
	*mockRepo.MockRegistrationRepository,
	*mockRepo.MockTransactionManager,
) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewRegistrationService(registrationRepo, txManager)

	return svc, registrationRepo, txManager
}

// passthroughTx makes the transaction manager run the closure against the
// same registration repository mock, mimicking a committed transaction.
func passthroughTx(t *testing.T, txManager *mockRepo.MockTransactionManager, registrationRepo *mockRepo.MockRegistrationRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRegistrationRepository().Return(registrationRepo)

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestRegistrationService_RegisterAddress_Success(t *testing.T) {
	svc, registrationRepo, txManager := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(t, txManager, registrationRepo)

	registrationRepo.EXPECT().UpsertRegistration(ctx, userID, constants.RolePlayer).Return(nil)
	registrationRepo.EXPECT().AddAddress(ctx, &entity.ChannelAddress{
		UserID:   userID,
		Channel:  entity.ChannelPush,
		Address:  "fcm-token",
		Platform: "android",
	}).Return(nil)

	err := svc.RegisterAddress(ctx, userID, "", entity.ChannelPush, "fcm-token", "android")

	require.NoError(t, err)
}

func TestRegistrationService_RegisterAddress_KeepsCallerRole(t *testing.T) {
	svc, registrationRepo, txManager := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(t, txManager, registrationRepo)

	registrationRepo.EXPECT().UpsertRegistration(ctx, userID, constants.RoleAdmin).Return(nil)
	registrationRepo.EXPECT().AddAddress(ctx, mock.Anything).Return(nil)

	err := svc.RegisterAddress(ctx, userID, constants.RoleAdmin, entity.ChannelWebPush, "sub-token", "web")

	require.NoError(t, err)
}

func TestRegistrationService_RegisterAddress_RejectsInAppChannel(t *testing.T) {
	svc, _, _ := createTestRegistrationService(t)

	err := svc.RegisterAddress(context.Background(), uuid.New(), "", entity.ChannelInApp, "anything", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept addresses")
}

func TestRegistrationService_RegisterAddress_RequiresAddress(t *testing.T) {
	svc, _, _ := createTestRegistrationService(t)

	err := svc.RegisterAddress(context.Background(), uuid.New(), "", entity.ChannelPush, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address is required")
}

func TestRegistrationService_UnregisterAddress_Idempotent(t *testing.T) {
	svc, registrationRepo, _ := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	registrationRepo.EXPECT().RemoveAddress(ctx, userID, entity.ChannelPush, "gone-token").Return(nil)

	err := svc.UnregisterAddress(ctx, userID, entity.ChannelPush, "gone-token")

	require.NoError(t, err)
}

func TestRegistrationService_UnregisterAddress_UnknownChannel(t *testing.T) {
	svc, _, _ := createTestRegistrationService(t)

	err := svc.UnregisterAddress(context.Background(), uuid.New(), "carrier-pigeon", "token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown channel")
}

func TestRegistrationService_SetPreference_ExistingRegistrationKeepsRole(t *testing.T) {
	svc, registrationRepo, txManager := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(t, txManager, registrationRepo)

	// An existing row must not be upserted, or an admin would be downgraded.
	registrationRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.RecipientRegistration{UserID: userID, Role: constants.RoleAdmin}, nil)
	registrationRepo.EXPECT().SetPreference(ctx, userID, entity.KindGameClosingSoon, false).Return(nil)

	err := svc.SetPreference(ctx, userID, entity.KindGameClosingSoon, false)

	require.NoError(t, err)
}

func TestRegistrationService_SetPreference_CreatesRegistrationOnFirstUse(t *testing.T) {
	svc, registrationRepo, txManager := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(t, txManager, registrationRepo)

	registrationRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrRegistrationNotFound)
	registrationRepo.EXPECT().UpsertRegistration(ctx, userID, constants.RolePlayer).Return(nil)
	registrationRepo.EXPECT().SetPreference(ctx, userID, entity.KindTournamentUpdate, true).Return(nil)

	err := svc.SetPreference(ctx, userID, entity.KindTournamentUpdate, true)

	require.NoError(t, err)
}

func TestRegistrationService_SetPreference_UnknownKind(t *testing.T) {
	svc, _, _ := createTestRegistrationService(t)

	err := svc.SetPreference(context.Background(), uuid.New(), "weather_alert", true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown intent kind")
}

func TestRegistrationService_DeleteAccount(t *testing.T) {
	svc, registrationRepo, txManager := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	passthroughTx(t, txManager, registrationRepo)

	registrationRepo.EXPECT().DeleteRegistration(ctx, userID).Return(nil)

	err := svc.DeleteAccount(ctx, userID)

	require.NoError(t, err)
}
