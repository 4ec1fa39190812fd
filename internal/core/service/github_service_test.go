package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

type stubGithubClient struct {
	repos ports.GithubRepo
	err   error
	calls int
	limit int
}

func (c *stubGithubClient) ListRepos(_ context.Context, _ string, limit int) ([]ports.GithubRepo, error) {
	c.calls++
	c.limit = limit
	if c.err != nil {
		return nil, c.err
	}
	return []ports.GithubRepo{c.repos}, nil
}

type stubGithubCache struct {
	entries map[string][]ports.GithubRepo
	getErr  error
	setErr  error
	sets    int
}

func newStubGithubCache() *stubGithubCache {
	return &stubGithubCache{entries: make(map[string][]ports.GithubRepo)}
}

func (c *stubGithubCache) Get(_ context.Context, username string) ([]ports.GithubRepo, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	repos, ok := c.entries[username]
	return repos, ok, nil
}

func (c *stubGithubCache) Set(_ context.Context, username string, repos []ports.GithubRepo) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[username] = repos
	c.sets++
	return nil
}

func TestGithubService_Repos_FetchesAndCaches(t *testing.T) {
	client := &stubGithubClient{repos: ports.GithubRepo{Name: "devconnect", Stars: 42}}
	cache := newStubGithubCache()
	svc := NewGithubService(client, cache, discardLogger)

	repos, err := svc.Repos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repos) != 1 || repos[0].Name != "devconnect" {
		t.Fatalf("unexpected repos: %+v", repos)
	}
	if client.limit != githubReposLimit {
		t.Errorf("expected limit %d passed upstream, got %d", githubReposLimit, client.limit)
	}
	if cache.sets != 1 {
		t.Errorf("result must be cached, got %d sets", cache.sets)
	}
}

func TestGithubService_Repos_CacheHitSkipsUpstream(t *testing.T) {
	client := &stubGithubClient{}
	cache := newStubGithubCache()
	cache.entries["octocat"] = []ports.GithubRepo{{Name: "cached"}}
	svc := NewGithubService(client, cache, discardLogger)

	repos, err := svc.Repos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repos[0].Name != "cached" {
		t.Errorf("expected cached result, got %+v", repos)
	}
	if client.calls != 0 {
		t.Errorf("upstream must not be called on a cache hit, got %d calls", client.calls)
	}
}

func TestGithubService_Repos_CacheFailuresAreNonFatal(t *testing.T) {
	client := &stubGithubClient{repos: ports.GithubRepo{Name: "devconnect"}}
	cache := newStubGithubCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewGithubService(client, cache, discardLogger)

	repos, err := svc.Repos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(repos) != 1 {
		t.Fatalf("unexpected repos: %+v", repos)
	}
}

func TestGithubService_Repos_UpstreamNotFound(t *testing.T) {
	client := &stubGithubClient{err: domain.ErrGithubProfileNotFound}
	svc := NewGithubService(client, newStubGithubCache(), discardLogger)

	_, err := svc.Repos(context.Background(), "no-such-user")
	if !errors.Is(err, domain.ErrGithubProfileNotFound) {
		t.Fatalf("expected ErrGithubProfileNotFound, got %v", err)
	}
}
