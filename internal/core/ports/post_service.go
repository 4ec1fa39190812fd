package ports

import (
	"context"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

// PostService defines the post aggregate and engagement use cases.
// Like and Unlike are the two directions of an asymmetric toggle: each
// direction rejects re-application (domain.ErrAlreadyLiked / ErrNotLiked)
// instead of silently no-op'ing.
type PostService interface {
	Create(ctx context.Context, principalID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, principalID, id string) error
	Like(ctx context.Context, principalID, id string) ([]domain.Like, error)
	Unlike(ctx context.Context, principalID, id string) ([]domain.Like, error)
	AddComment(ctx context.Context, principalID, postID, text string) (*domain.Post, error)
	RemoveComment(ctx context.Context, principalID, postID, commentID string) ([]domain.Comment, error)
}
