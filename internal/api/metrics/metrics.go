// Package metrics defines and registers all custom Prometheus metrics for the
// notes API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry via promauto at
// package load; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// CacheRequestsTotal counts cache lookups on the post-listing read path.
// Label:
//   - result: "hit", "miss", or "error" (cache store failure, served from
//     the durable store instead)
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of post-listing cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts successfully persisted posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostsDeletedTotal counts successfully deleted posts.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_token", "unknown_subject", "unknown_account", or
//     "bad_password". Reasons are for operators only; responses stay uniform.
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)
