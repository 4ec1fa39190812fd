package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devconnect/devconnect-api/internal/core/ports"
)

const githubCacheTTL = 10 * time.Minute

// GithubCache stores GitHub proxy responses in Redis.
// Key format: github:repos:<username>
type GithubCache struct {
	client *redis.Client
}

// NewGithubCache creates a GithubCache wrapping the given Redis client.
func NewGithubCache(client *redis.Client) *GithubCache {
	return &GithubCache{client: client}
}

// Get returns the cached repo listing and whether it was present.
func (c *GithubCache) Get(ctx context.Context, username string) ([]ports.GithubRepo, bool, error) {
	raw, err := c.client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("github cache get: %w", err)
	}

	var repos []ports.GithubRepo
	if err := json.Unmarshal(raw, &repos); err != nil {
		return nil, false, fmt.Errorf("github cache decode: %w", err)
	}
	return repos, true, nil
}

// Set stores the repo listing (expires after githubCacheTTL).
func (c *GithubCache) Set(ctx context.Context, username string, repos []ports.GithubRepo) error {
	raw, err := json.Marshal(repos)
	if err != nil {
		return fmt.Errorf("github cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(username), raw, githubCacheTTL).Err()
}

func (c *GithubCache) key(username string) string {
	return "github:repos:" + username
}
