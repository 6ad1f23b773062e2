package usecase

import (
	"context"

	"courtside/internal/domain/entity"
)

// ResolvedRecipient is one unique recipient of an intent after targeting,
// deduplication, and preference filtering.
type ResolvedRecipient struct {
	Registration *entity.RecipientRegistration
}

// RecipientResolver expands an intent's targeting into the concrete set of
// recipients. The result contains each user at most once, excludes opted-out
// users, and drops target IDs with no registration.
type RecipientResolver interface {
	Resolve(ctx context.Context, intent *entity.NotificationIntent) ([]*ResolvedRecipient, error)
}
