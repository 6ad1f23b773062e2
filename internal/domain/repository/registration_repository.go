// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a recipient registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
)

// RegistrationRepository defines the interface for recipient registration
// storage: the per-user record plus its channel addresses and preferences.
type RegistrationRepository interface {
	// UpsertRegistration creates the per-user registration row if missing and
	// refreshes its role and updated_at otherwise.
	UpsertRegistration(ctx context.Context, userID uuid.UUID, role string) error

	// FindByUserID retrieves one recipient's registration with addresses and
	// preferences loaded. Returns ErrRegistrationNotFound if absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RecipientRegistration, error)

	// FindByUserIDs retrieves registrations for the given users. IDs without a
	// registration are silently dropped from the result.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.RecipientRegistration, error)

	// FindAll retrieves every registration.
	FindAll(ctx context.Context) ([]*entity.RecipientRegistration, error)

	// FindByRole retrieves every registration with the given role.
	FindByRole(ctx context.Context, role string) ([]*entity.RecipientRegistration, error)

	// AddAddress registers an address for a channel. Idempotent: re-adding an
	// existing (user, channel, address) triple is a no-op.
	AddAddress(ctx context.Context, address *entity.ChannelAddress) error

	// RemoveAddress unregisters an address. Idempotent: removing an absent
	// address is a no-op, not an error.
	RemoveAddress(ctx context.Context, userID uuid.UUID, channel entity.Channel, address string) error

	// ListAddresses pages through registered addresses of a channel, ordered
	// by creation time, for the periodic sweep.
	ListAddresses(ctx context.Context, channel entity.Channel, limit, offset int) ([]*entity.ChannelAddress, error)

	// SetPreference records an explicit opt-in/opt-out for an intent kind.
	SetPreference(ctx context.Context, userID uuid.UUID, kind entity.IntentKind, enabled bool) error

	// DeleteRegistration removes the registration row together with its
	// addresses and preferences. Used only on explicit account deletion.
	DeleteRegistration(ctx context.Context, userID uuid.UUID) error
}
