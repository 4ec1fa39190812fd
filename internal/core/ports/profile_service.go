package ports

import (
	"context"
	"time"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

// ProfileInput is the sparse create-or-update payload. Empty fields mean
// "absent": on update they leave the stored value untouched, never clear it.
// Skills is the raw comma-separated string; the service splits and trims it.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Instagram      string
	Linkedin       string
}

// ExperienceInput carries a new work-history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileOwner is the denormalized {name, avatar} view of the referenced user,
// joined at read time for profile reads.
type ProfileOwner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProfileDetail is a profile plus its owner view.
type ProfileDetail struct {
	Profile *domain.Profile
	Owner   ProfileOwner
}

// GithubRepo is the trimmed repository view returned by the GitHub proxy.
type GithubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Watchers    int    `json:"watchers_count"`
}

// ProfileService defines the profile aggregate use cases.
type ProfileService interface {
	CreateOrUpdate(ctx context.Context, principalID string, in ProfileInput) (*domain.Profile, error)
	GetMine(ctx context.Context, principalID string) (*ProfileDetail, error)
	GetByUserID(ctx context.Context, userID string) (*ProfileDetail, error)
	List(ctx context.Context) ([]*ProfileDetail, error)
	// Delete removes the profile and the owning user account together.
	Delete(ctx context.Context, principalID string) error
	AddExperience(ctx context.Context, principalID string, in ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, principalID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, principalID string, in EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, principalID, entryID string) (*domain.Profile, error)
}

// GithubService proxies the public repository listing of a GitHub user.
type GithubService interface {
	Repos(ctx context.Context, username string) ([]GithubRepo, error)
}

// GithubClient is the outbound GitHub API boundary.
type GithubClient interface {
	ListRepos(ctx context.Context, username string, limit int) ([]GithubRepo, error)
}

// GithubCache is the cache-aside store for GitHub proxy responses.
type GithubCache interface {
	Get(ctx context.Context, username string) ([]GithubRepo, bool, error)
	Set(ctx context.Context, username string, repos []GithubRepo) error
}
