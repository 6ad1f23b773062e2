package usecase

import (
	"context"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistrationUsecase defines the recipient registration use cases: channel
// addresses, notification preferences, and account removal.
type RegistrationUsecase interface {
	// RegisterAddress records a delivery address for a channel, creating the
	// recipient's registration on first use. Re-registering an existing
	// address is a no-op.
	RegisterAddress(ctx context.Context, userID uuid.UUID, role string, channel entity.Channel, address, platform string) error

	// UnregisterAddress removes a delivery address. Removing an address that
	// was never registered is a no-op.
	UnregisterAddress(ctx context.Context, userID uuid.UUID, channel entity.Channel, address string) error

	// GetRegistration retrieves one recipient's registration with addresses
	// and preferences.
	GetRegistration(ctx context.Context, userID uuid.UUID) (*entity.RecipientRegistration, error)

	// SetPreference records an explicit opt-in or opt-out for an intent kind.
	SetPreference(ctx context.Context, userID uuid.UUID, kind entity.IntentKind, enabled bool) error

	// DeleteAccount removes the registration together with all of its
	// addresses and preferences in one transaction.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
