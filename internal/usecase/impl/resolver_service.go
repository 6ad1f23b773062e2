// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"fmt"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolverService implements usecase.RecipientResolver on top of the
// registration repository.
type resolverService struct {
	registrationRepo repository.RegistrationRepository
}

// NewRecipientResolver creates a new recipient resolver instance
func NewRecipientResolver(registrationRepo repository.RegistrationRepository) usecase.RecipientResolver {
	return &resolverService{
		registrationRepo: registrationRepo,
	}
}

// Resolve expands the intent's targeting into unique, opted-in recipients.
// Duplicate user IDs in a list target collapse to one recipient; IDs without
// a registration are dropped silently.
func (s *resolverService) Resolve(ctx context.Context, intent *entity.NotificationIntent) ([]*usecase.ResolvedRecipient, error) {
	registrations, err := s.lookup(ctx, intent)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(registrations))
	recipients := make([]*usecase.ResolvedRecipient, 0, len(registrations))
	for _, registration := range registrations {
		if _, ok := seen[registration.UserID]; ok {
			continue
		}
		seen[registration.UserID] = struct{}{}

		if !registration.Allows(intent.Kind) {
			continue
		}

		recipients = append(recipients, &usecase.ResolvedRecipient{Registration: registration})
	}

	return recipients, nil
}

func (s *resolverService) lookup(ctx context.Context, intent *entity.NotificationIntent) ([]*entity.RecipientRegistration, error) {
	switch intent.Targeting.Rule {
	case entity.TargetAllUsers:
		registrations, err := s.registrationRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve broadcast targeting: %w", err)
		}

		return registrations, nil

	case entity.TargetUserID, entity.TargetUserIDList:
		if len(intent.Targeting.UserIDs) == 0 {
			return nil, errors.New("user targeting requires at least one user ID")
		}

		registrations, err := s.registrationRepo.FindByUserIDs(ctx, intent.Targeting.UserIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user targeting: %w", err)
		}

		return registrations, nil

	case entity.TargetRole:
		if intent.Targeting.Role == "" {
			return nil, errors.New("role targeting requires a role")
		}

		registrations, err := s.registrationRepo.FindByRole(ctx, intent.Targeting.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role targeting: %w", err)
		}

		return registrations, nil

	default:
		return nil, errors.Errorf("unknown targeting rule: %s", intent.Targeting.Rule)
	}
}
