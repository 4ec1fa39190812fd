package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// PostService implements post publication and engagement (likes, comments).
// Owner-scoped mutations always check existence first, then ownership, so a
// missing post reports not-found rather than unauthorized.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create publishes a new post. The author's name and avatar are denormalized
// onto the post at creation time and never re-resolved afterwards, so they go
// stale if the user later changes them. That staleness is the contract.
func (s *PostService) Create(ctx context.Context, principalID, text string) (*domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	author, err := s.users.FindByID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID:     author.ID,
		Text:         text,
		AuthorName:   author.Name,
		AuthorAvatar: author.AvatarURL,
		Likes:        []domain.Like{},
		Comments:     []domain.Comment{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("author_id", principalID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author_id", author.ID).Msg("post created")
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindAll(ctx)
}

// Get returns a single post by ID.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, principalID, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AssertOwner(post.AuthorID, principalID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	s.logger.Info().Str("post_id", id).Str("author_id", principalID).Msg("post deleted")
	return nil
}

// Like records the principal's like. A duplicate like is rejected with
// ErrAlreadyLiked rather than silently no-op'ing; that asymmetric toggle is
// deliberate.
func (s *PostService) Like(ctx context.Context, principalID, id string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.LikedBy(principalID) {
		return nil, domain.ErrAlreadyLiked
	}

	post.Likes = append([]domain.Like{{UserID: principalID}}, post.Likes...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes exactly the principal's like entry, by filtering rather than
// by index so no neighbouring entry can ever be shifted out.
func (s *PostService) Unlike(ctx context.Context, principalID, id string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.LikedBy(principalID) {
		return nil, domain.ErrNotLiked
	}

	kept := post.Likes[:0:0]
	for _, l := range post.Likes {
		if l.UserID != principalID {
			kept = append(kept, l)
		}
	}
	post.Likes = kept

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment with a fresh ID and the commenter's snapshot.
// Any authenticated principal may comment; only the post's existence is
// required.
func (s *PostService) AddComment(ctx context.Context, principalID, postID, text string) (*domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	author, err := s.users.FindByID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:           newEntryID(),
		AuthorID:     author.ID,
		Text:         text,
		AuthorName:   author.Name,
		AuthorAvatar: author.AvatarURL,
		CreatedAt:    time.Now().UTC(),
	}
	post.Comments = append([]domain.Comment{comment}, post.Comments...)

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// RemoveComment deletes a comment strictly by its own ID. Only the comment's
// author may remove it, even when the principal owns the post. Removal by
// comment ID (not by author index) keeps other comments from the same author
// intact.
func (s *PostService) RemoveComment(ctx context.Context, principalID, postID, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := post.CommentByID(commentID)
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if err := domain.AssertOwner(comment.AuthorID, principalID); err != nil {
		return nil, err
	}

	kept := post.Comments[:0:0]
	for _, c := range post.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	post.Comments = kept

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
