package handler

import "github.com/devconnect/devconnect-api/internal/core/domain"

type createPostRequest struct {
	Text string `json:"text"`
}

type commentRequest struct {
	Text string `json:"text"`
}

// likesResponse is what like/unlike return: the post's full likes list after
// the mutation, newest first.
type likesResponse struct {
	Likes []domain.Like `json:"likes"`
}

// commentsResponse is what remove-comment returns: the remaining comments.
type commentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}
