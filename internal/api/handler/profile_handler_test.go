package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

// stubProfileService implements ports.ProfileService with overridable functions.
type stubProfileService struct {
	createOrUpdateFn   func(ctx context.Context, principalID string, in ports.ProfileInput) (*domain.Profile, error)
	getMineFn          func(ctx context.Context, principalID string) (*ports.ProfileDetail, error)
	getByUserIDFn      func(ctx context.Context, userID string) (*ports.ProfileDetail, error)
	listFn             func(ctx context.Context) ([]*ports.ProfileDetail, error)
	deleteFn           func(ctx context.Context, principalID string) error
	addExperienceFn    func(ctx context.Context, principalID string, in ports.ExperienceInput) (*domain.Profile, error)
	removeExperienceFn func(ctx context.Context, principalID, entryID string) (*domain.Profile, error)
	addEducationFn     func(ctx context.Context, principalID string, in ports.EducationInput) (*domain.Profile, error)
	removeEducationFn  func(ctx context.Context, principalID, entryID string) (*domain.Profile, error)
}

func (s *stubProfileService) CreateOrUpdate(ctx context.Context, principalID string, in ports.ProfileInput) (*domain.Profile, error) {
	return s.createOrUpdateFn(ctx, principalID, in)
}

func (s *stubProfileService) GetMine(ctx context.Context, principalID string) (*ports.ProfileDetail, error) {
	return s.getMineFn(ctx, principalID)
}

func (s *stubProfileService) GetByUserID(ctx context.Context, userID string) (*ports.ProfileDetail, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubProfileService) List(ctx context.Context) ([]*ports.ProfileDetail, error) {
	return s.listFn(ctx)
}

func (s *stubProfileService) Delete(ctx context.Context, principalID string) error {
	return s.deleteFn(ctx, principalID)
}

func (s *stubProfileService) AddExperience(ctx context.Context, principalID string, in ports.ExperienceInput) (*domain.Profile, error) {
	return s.addExperienceFn(ctx, principalID, in)
}

func (s *stubProfileService) RemoveExperience(ctx context.Context, principalID, entryID string) (*domain.Profile, error) {
	return s.removeExperienceFn(ctx, principalID, entryID)
}

func (s *stubProfileService) AddEducation(ctx context.Context, principalID string, in ports.EducationInput) (*domain.Profile, error) {
	return s.addEducationFn(ctx, principalID, in)
}

func (s *stubProfileService) RemoveEducation(ctx context.Context, principalID, entryID string) (*domain.Profile, error) {
	return s.removeEducationFn(ctx, principalID, entryID)
}

type stubGithubService struct {
	reposFn func(ctx context.Context, username string) ([]ports.GithubRepo, error)
}

func (s *stubGithubService) Repos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	return s.reposFn(ctx, username)
}

func TestProfileHandler_CreateOrUpdate_MapsRequestToInput(t *testing.T) {
	var got ports.ProfileInput
	svc := &stubProfileService{
		createOrUpdateFn: func(_ context.Context, principalID string, in ports.ProfileInput) (*domain.Profile, error) {
			if principalID != "alice" {
				t.Errorf("unexpected principal %q", principalID)
			}
			got = in
			return &domain.Profile{UserID: principalID, Status: in.Status}, nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/profile",
		`{"status":"Developer","skills":"go, mongo","company":"Acme","twitter":"https://twitter.com/alice"}`)
	withPrincipal(c, "alice")

	if err := h.CreateOrUpdate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got.Status != "Developer" || got.Skills != "go, mongo" || got.Company != "Acme" {
		t.Errorf("input not mapped: %+v", got)
	}
	if got.Twitter != "https://twitter.com/alice" {
		t.Errorf("social field not mapped: %+v", got)
	}
}

func TestProfileHandler_GetMine_EmbedsOwner(t *testing.T) {
	svc := &stubProfileService{
		getMineFn: func(_ context.Context, principalID string) (*ports.ProfileDetail, error) {
			return &ports.ProfileDetail{
				Profile: &domain.Profile{UserID: principalID, Status: "Developer"},
				Owner:   ports.ProfileOwner{Name: "Alice", Avatar: "https://example.com/a.png"},
			}, nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/profile/me", "")
	withPrincipal(c, "alice")

	if err := h.GetMine(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Status string             `json:"status"`
		Owner  ports.ProfileOwner `json:"owner"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "Developer" {
		t.Errorf("profile fields must be at the top level, got %+v", resp)
	}
	if resp.Owner.Name != "Alice" {
		t.Errorf("owner view missing: %+v", resp)
	}
}

func TestProfileHandler_GetMine_NotFoundPassedThrough(t *testing.T) {
	svc := &stubProfileService{
		getMineFn: func(context.Context, string) (*ports.ProfileDetail, error) {
			return nil, domain.ErrProfileNotFound
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/profile/me", "")
	withPrincipal(c, "alice")

	if err := h.GetMine(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_GetByUserID_NoAuthRequired(t *testing.T) {
	svc := &stubProfileService{
		getByUserIDFn: func(_ context.Context, userID string) (*ports.ProfileDetail, error) {
			if userID != "bob" {
				t.Errorf("expected user bob, got %q", userID)
			}
			return &ports.ProfileDetail{Profile: &domain.Profile{UserID: userID}}, nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	// No principal in context: the route is public.
	c, rec := newJSONContext(t, http.MethodGet, "/api/profile/user/bob", "")
	c.SetParamNames("user_id")
	c.SetParamValues("bob")

	if err := h.GetByUserID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Delete_OK(t *testing.T) {
	deleted := ""
	svc := &stubProfileService{
		deleteFn: func(_ context.Context, principalID string) error {
			deleted = principalID
			return nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, rec := newJSONContext(t, http.MethodDelete, "/api/profile", "")
	withPrincipal(c, "alice")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "alice" {
		t.Errorf("expected delete for alice, got %q", deleted)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["msg"] != "user deleted" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestProfileHandler_AddExperience_MapsDates(t *testing.T) {
	var got ports.ExperienceInput
	svc := &stubProfileService{
		addExperienceFn: func(_ context.Context, _ string, in ports.ExperienceInput) (*domain.Profile, error) {
			got = in
			return &domain.Profile{}, nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, _ := newJSONContext(t, http.MethodPut, "/api/profile/experience",
		`{"title":"Engineer","company":"Acme","from":"2020-01-01T00:00:00Z","current":true}`)
	withPrincipal(c, "alice")

	if err := h.AddExperience(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Engineer" || got.From.IsZero() || !got.Current {
		t.Errorf("input not mapped: %+v", got)
	}
	if got.To != nil {
		t.Errorf("absent to must stay nil, got %v", got.To)
	}
}

func TestProfileHandler_RemoveEducation_UsesPathParam(t *testing.T) {
	svc := &stubProfileService{
		removeEducationFn: func(_ context.Context, principalID, entryID string) (*domain.Profile, error) {
			if entryID != "edu1" {
				t.Errorf("expected entry edu1, got %q", entryID)
			}
			return &domain.Profile{UserID: principalID}, nil
		},
	}
	h := NewProfileHandler(svc, &stubGithubService{})

	c, _ := newJSONContext(t, http.MethodDelete, "/api/profile/education/edu1", "")
	withPrincipal(c, "alice")
	c.SetParamNames("id")
	c.SetParamValues("edu1")

	if err := h.RemoveEducation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileHandler_GithubRepos_OK(t *testing.T) {
	gh := &stubGithubService{
		reposFn: func(_ context.Context, username string) ([]ports.GithubRepo, error) {
			if username != "octocat" {
				t.Errorf("expected username octocat, got %q", username)
			}
			return []ports.GithubRepo{{Name: "hello-world", Stars: 80}}, nil
		},
	}
	h := NewProfileHandler(&stubProfileService{}, gh)

	c, rec := newJSONContext(t, http.MethodGet, "/api/profile/github/octocat", "")
	c.SetParamNames("username")
	c.SetParamValues("octocat")

	if err := h.GithubRepos(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var repos []ports.GithubRepo
	if err := json.Unmarshal(rec.Body.Bytes(), &repos); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(repos) != 1 || repos[0].Stars != 80 {
		t.Errorf("unexpected repos: %+v", repos)
	}
}

func TestProfileHandler_GithubRepos_NotFoundPassedThrough(t *testing.T) {
	gh := &stubGithubService{
		reposFn: func(context.Context, string) ([]ports.GithubRepo, error) {
			return nil, domain.ErrGithubProfileNotFound
		},
	}
	h := NewProfileHandler(&stubProfileService{}, gh)

	c, _ := newJSONContext(t, http.MethodGet, "/api/profile/github/nobody", "")
	c.SetParamNames("username")
	c.SetParamValues("nobody")

	if err := h.GithubRepos(c); !errors.Is(err, domain.ErrGithubProfileNotFound) {
		t.Fatalf("expected ErrGithubProfileNotFound, got %v", err)
	}
}
