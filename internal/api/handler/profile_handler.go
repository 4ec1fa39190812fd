package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/devconnect-api/internal/api/metrics"
	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// githubResultLabel maps a proxy failure to its metric label.
func githubResultLabel(err error) string {
	if errors.Is(err, domain.ErrGithubProfileNotFound) {
		return "not_found"
	}
	return "error"
}

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service ports.ProfileService
	github  ports.GithubService
}

func NewProfileHandler(service ports.ProfileService, github ports.GithubService) *ProfileHandler {
	return &ProfileHandler{service: service, github: github}
}

// CreateOrUpdate handles POST /api/profile.
//
// @Summary      Create or update the authenticated user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields (sparse)"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) CreateOrUpdate(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.CreateOrUpdate(c.Request().Context(), principal, ports.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	})
	if err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, profile)
}

// GetMine handles GET /api/profile/me.
//
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile/me [get]
func (h *ProfileHandler) GetMine(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetMine(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(detail))
}

// GetByUserID handles GET /api/profile/user/:user_id.
//
// @Summary      Get a profile by user ID
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  profileResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/profile/user/{user_id} [get]
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	detail, err := h.service.GetByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(detail))
}

// List handles GET /api/profile.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}  profileResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]profileResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toProfileResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/profile — removes the profile and the account.
//
// @Summary      Delete the authenticated user's profile and account
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "user deleted"})
}

// AddExperience handles PUT /api/profile/experience.
//
// @Summary      Add a work-history entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      experienceRequest  true  "Experience entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.AddExperience(c.Request().Context(), principal, ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:id.
//
// @Summary      Remove a work-history entry by ID
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Experience entry ID"
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile/experience/{id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
//
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      educationRequest  true  "Education entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.AddEducation(c.Request().Context(), principal, ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/:id.
//
// @Summary      Remove an education entry by ID
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Education entry ID"
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile/education/{id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	principal, err := principalID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveEducation(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos handles GET /api/profile/github/:username.
//
// @Summary      List a GitHub user's recent public repositories
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {array}   ports.GithubRepo
// @Failure      404       {object}  errorResponse
// @Router       /api/profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.github.Repos(c.Request().Context(), c.Param("username"))
	if err != nil {
		metrics.GithubProxyTotal.WithLabelValues(githubResultLabel(err)).Inc()
		return err
	}

	metrics.GithubProxyTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, repos)
}
