package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devconnect/devconnect-api/internal/core/ports"
)

const githubReposLimit = 5

// githubService proxies the GitHub repository listing for a profile's
// github username, cache-aside: serve from cache when possible, otherwise
// fetch and populate.
type githubService struct {
	client ports.GithubClient
	cache  ports.GithubCache
	log    zerolog.Logger
}

// NewGithubService returns a GithubService implementation.
func NewGithubService(client ports.GithubClient, cache ports.GithubCache, log zerolog.Logger) ports.GithubService {
	return &githubService{client: client, cache: cache, log: log}
}

// Repos returns the user's most recent public repositories. Cache failures
// are non-fatal: the upstream call proceeds anyway.
func (s *githubService) Repos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	repos, hit, err := s.cache.Get(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("github cache read failed, fetching upstream")
	} else if hit {
		s.log.Debug().Str("username", username).Msg("github cache hit")
		return repos, nil
	}

	repos, err = s.client.ListRepos(ctx, username, githubReposLimit)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, username, repos); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("username", username).Msg("failed to cache github repos")
	}

	return repos, nil
}
