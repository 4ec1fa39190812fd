package ports

import (
	"context"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

// PostRepository defines persistence operations for post aggregates.
// Save follows the same contract as ProfileRepository.Save: whole-document
// replace, version-checked.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns all posts, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	Save(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
