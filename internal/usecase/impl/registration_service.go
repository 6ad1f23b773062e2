package impl

import (
	"context"
	"fmt"

	"courtside/internal/domain/constants"
	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	txManager        repository.TransactionManager
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	txManager repository.TransactionManager,
) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: registrationRepo,
		txManager:        txManager,
	}
}

// RegisterAddress records a delivery address for a channel. The registration
// row is upserted first so a fresh user can register a token in one call.
func (s *registrationService) RegisterAddress(ctx context.Context, userID uuid.UUID, role string, channel entity.Channel, address, platform string) error {
	if !channel.Valid() || !channel.Addressable() {
		return domainerrors.ErrInvalidChannel.WrapMessage("channel does not accept addresses: " + string(channel))
	}
	if address == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("address is required")
	}
	if role == "" {
		role = constants.RolePlayer
	}

	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txRepo := txRepoFactory.NewRegistrationRepository()

		if err := txRepo.UpsertRegistration(ctx, userID, role); err != nil {
			return fmt.Errorf("failed to upsert registration: %w", err)
		}

		if err := txRepo.AddAddress(ctx, &entity.ChannelAddress{
			UserID:   userID,
			Channel:  channel,
			Address:  address,
			Platform: platform,
		}); err != nil {
			return fmt.Errorf("failed to add address: %w", err)
		}

		return nil
	})
}

// UnregisterAddress removes a delivery address. Unknown addresses are a
// no-op so clients can retry removal freely.
func (s *registrationService) UnregisterAddress(ctx context.Context, userID uuid.UUID, channel entity.Channel, address string) error {
	if !channel.Valid() {
		return domainerrors.ErrInvalidChannel.WrapMessage("unknown channel: " + string(channel))
	}

	return s.registrationRepo.RemoveAddress(ctx, userID, channel, address)
}

// GetRegistration retrieves one recipient's registration.
func (s *registrationService) GetRegistration(ctx context.Context, userID uuid.UUID) (*entity.RecipientRegistration, error) {
	return s.registrationRepo.FindByUserID(ctx, userID)
}

// SetPreference records an explicit opt-in or opt-out for an intent kind.
// The registration row is upserted first so preferences can be set before
// any address exists.
func (s *registrationService) SetPreference(ctx context.Context, userID uuid.UUID, kind entity.IntentKind, enabled bool) error {
	if !kind.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown intent kind: " + string(kind))
	}

	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txRepo := txRepoFactory.NewRegistrationRepository()

		// Create the registration on first use, but never touch an existing
		// row's role from the preference path.
		if _, err := txRepo.FindByUserID(ctx, userID); err != nil {
			if !errors.Is(err, repository.ErrRegistrationNotFound) {
				return fmt.Errorf("failed to load registration: %w", err)
			}
			if err := txRepo.UpsertRegistration(ctx, userID, constants.RolePlayer); err != nil {
				return fmt.Errorf("failed to create registration: %w", err)
			}
		}

		if err := txRepo.SetPreference(ctx, userID, kind, enabled); err != nil {
			return fmt.Errorf("failed to set preference: %w", err)
		}

		return nil
	})
}

// DeleteAccount removes the registration, its addresses, and its preferences
// in one transaction.
func (s *registrationService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewRegistrationRepository().DeleteRegistration(ctx, userID)
	})
}
