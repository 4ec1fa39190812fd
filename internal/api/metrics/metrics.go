// Package metrics defines and registers all custom Prometheus metrics for the
// devconnect API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devconnect"

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts successfully published posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts published.",
	},
)

// LikeTogglesTotal counts successful like-toggle operations.
// Label:
//   - direction: "like" or "unlike"
var LikeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_toggles_total",
		Help:      "Total number of successful like/unlike operations.",
	},
	[]string{"direction"},
)

// CommentsTotal counts successful comment mutations.
// Label:
//   - action: "added" or "removed"
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of successful comment mutations.",
	},
	[]string{"action"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfileUpdatesTotal counts profile create-or-update operations.
var ProfileUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile create-or-update operations.",
	},
)

// GithubProxyTotal counts GitHub repo proxy lookups.
// Label:
//   - result: "hit" (served), "not_found", or "error"
var GithubProxyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_proxy_total",
		Help:      "Total number of GitHub repository proxy lookups, by result.",
	},
	[]string{"result"},
)
