// Package metrics defines the custom Prometheus metrics for the game review
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gamevault"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "user" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role:   the role the login targeted
//   - result: "success", "not_found", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_header", "malformed", "signature_invalid", "expired"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the bearer-token guard, by reason.",
	},
	[]string{"reason"},
)

// HashQueueDepth tracks the current number of bcrypt jobs waiting in the
// hash pool's channel.
var HashQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hash_queue_depth",
		Help:      "Current number of password-hash jobs pending in the worker pool.",
	},
)

// HashDuration measures how long a single bcrypt operation takes.
// Label:
//   - op: "hash" or "compare"
var HashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hash_duration_seconds",
		Help:      "Duration of bcrypt hash and compare operations.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// GamesWrittenTotal counts catalog mutations.
// Label:
//   - op: "create", "update", or "delete"
var GamesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_written_total",
		Help:      "Total number of catalog write operations, by operation.",
	},
	[]string{"op"},
)

// ReviewsCreatedTotal counts reviews accepted into the store.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created.",
	},
)
