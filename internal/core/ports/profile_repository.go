package ports

import (
	"context"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profile aggregates.
// Save replaces the whole document: it inserts when the profile has no ID yet,
// otherwise it performs a version-checked replace and returns
// domain.ErrVersionConflict when another writer updated the document first.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	FindAll(ctx context.Context) ([]*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	// DeleteWithUser removes the profile and its owning user as one atomic
	// operation (single Mongo transaction).
	DeleteWithUser(ctx context.Context, userID string) error
}
