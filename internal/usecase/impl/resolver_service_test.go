package impl

import (
	"context"
	"testing"

	"courtside/internal/domain/entity"
	mockRepo "courtside/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntent(rule entity.TargetingRule, userIDs []uuid.UUID, role string) *entity.NotificationIntent {
	return &entity.NotificationIntent{
		ID:    uuid.New(),
		Kind:  entity.KindGameCreated,
		Title: "t",
		Body:  "b",
		Targeting: entity.Targeting{
			Rule:    rule,
			UserIDs: userIDs,
			Role:    role,
		},
	}
}

func TestRecipientResolver_Resolve_Broadcast(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	registrationRepo.EXPECT().FindAll(ctx).Return([]*entity.RecipientRegistration{
		{UserID: first},
		{UserID: second},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetAllUsers, nil, ""))

	require.NoError(t, err)
	require.Len(t, recipients, 2)
}

func TestRecipientResolver_Resolve_DeduplicatesUsers(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{userID, userID}

	registrationRepo.EXPECT().FindByUserIDs(ctx, ids).Return([]*entity.RecipientRegistration{
		{UserID: userID},
		{UserID: userID},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetUserIDList, ids, ""))

	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, userID, recipients[0].Registration.UserID)
}

func TestRecipientResolver_Resolve_FiltersOptedOutUsers(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	optedIn := uuid.New()
	optedOut := uuid.New()

	registrationRepo.EXPECT().FindAll(ctx).Return([]*entity.RecipientRegistration{
		{UserID: optedIn},
		{
			UserID: optedOut,
			Preferences: map[entity.IntentKind]bool{
				entity.KindGameCreated: false,
			},
		},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetAllUsers, nil, ""))

	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, optedIn, recipients[0].Registration.UserID)
}

func TestRecipientResolver_Resolve_AbsentPreferenceMeansAllowed(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	userID := uuid.New()

	// An opt-out for a different kind must not suppress this one.
	registrationRepo.EXPECT().FindByUserIDs(ctx, []uuid.UUID{userID}).Return([]*entity.RecipientRegistration{
		{
			UserID: userID,
			Preferences: map[entity.IntentKind]bool{
				entity.KindTournamentUpdate: false,
			},
		},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetUserID, []uuid.UUID{userID}, ""))

	require.NoError(t, err)
	require.Len(t, recipients, 1)
}

func TestRecipientResolver_Resolve_UnregisteredUsersAreDropped(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	known := uuid.New()
	unknown := uuid.New()
	ids := []uuid.UUID{known, unknown}

	registrationRepo.EXPECT().FindByUserIDs(ctx, ids).Return([]*entity.RecipientRegistration{
		{UserID: known},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetUserIDList, ids, ""))

	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, known, recipients[0].Registration.UserID)
}

func TestRecipientResolver_Resolve_RoleTargeting(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()
	adminID := uuid.New()

	registrationRepo.EXPECT().FindByRole(ctx, "admin").Return([]*entity.RecipientRegistration{
		{UserID: adminID, Role: "admin"},
	}, nil)

	recipients, err := resolver.Resolve(ctx, testIntent(entity.TargetRole, nil, "admin"))

	require.NoError(t, err)
	require.Len(t, recipients, 1)
}

func TestRecipientResolver_Resolve_UnknownRule(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	_, err := resolver.Resolve(context.Background(), testIntent("nearest_court", nil, ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown targeting rule")
}

func TestRecipientResolver_Resolve_RepositoryError(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	resolver := NewRecipientResolver(registrationRepo)

	ctx := context.Background()

	registrationRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("db gone"))

	_, err := resolver.Resolve(ctx, testIntent(entity.TargetAllUsers, nil, ""))

	require.Error(t, err)
}
