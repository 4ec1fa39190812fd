package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/devconnect-api/internal/api/metrics"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts and their engagement
// sub-collections.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Publish a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post text"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Create(c.Request().Context(), principal, req.Text)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Only the author may delete a post.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "post removed"})
}

// Like handles PUT /api/posts/like/:id.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  likesResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.LikeTogglesTotal.WithLabelValues("like").Inc()
	return c.JSON(http.StatusOK, likesResponse{Likes: likes})
}

// Unlike handles PUT /api/posts/unlike/:id.
//
// @Summary      Remove a like from a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  likesResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Unlike(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.LikeTogglesTotal.WithLabelValues("unlike").Inc()
	return c.JSON(http.StatusOK, likesResponse{Likes: likes})
}

// AddComment handles POST /api/posts/comment/:id.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post ID"
// @Param        body  body      commentRequest  true  "Comment text"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/posts/comment/{id} [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.AddComment(c.Request().Context(), principal, c.Param("id"), req.Text)
	if err != nil {
		return err
	}

	metrics.CommentsTotal.WithLabelValues("added").Inc()
	return c.JSON(http.StatusOK, post)
}

// RemoveComment handles DELETE /api/posts/comment/:post_id/:comment_id.
// Removal is strictly by the comment's own ID; only the comment's author may
// remove it, even when the principal owns the post.
//
// @Summary      Remove a comment from a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id     path      string  true  "Post ID"
// @Param        comment_id  path      string  true  "Comment ID"
// @Success      200         {object}  commentsResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/posts/comment/{post_id}/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	comments, err := h.service.RemoveComment(c.Request().Context(), principal, c.Param("post_id"), c.Param("comment_id"))
	if err != nil {
		return err
	}

	metrics.CommentsTotal.WithLabelValues("removed").Inc()
	return c.JSON(http.StatusOK, commentsResponse{Comments: comments})
}
