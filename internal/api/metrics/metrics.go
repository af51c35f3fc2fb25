// Package metrics defines and registers the custom Prometheus metrics for
// the RBAC demo API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rbac"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token", "malformed_header", "expired", "invalid", "user_gone"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// AuthzDenialsTotal counts authorization denials.
// Label:
//   - check: "permission" or "role"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authenticated requests denied by the authorization gate.",
	},
	[]string{"check"},
)

// ActivityRecordsTotal counts successfully recorded activity entries.
// Label:
//   - action: the activity action tag (e.g. "CREATE_ARTICLE")
var ActivityRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_records_total",
		Help:      "Total number of activity log entries recorded.",
	},
	[]string{"action"},
)

// ActivityLogFailuresTotal counts activity writes that failed and were
// swallowed. Recording is best-effort; this counter is the only
// caller-visible signal of a failed write.
var ActivityLogFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_log_failures_total",
		Help:      "Total number of activity log writes that failed silently.",
	},
)
