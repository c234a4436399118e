// Package metrics defines and registers all custom Prometheus metrics for
// the cat registry API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cat_registry"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts completed signups.
// Label:
//   - role: the role the account was created with ("user" or "admin")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password and unknown email are
//     deliberately not distinguished, matching the API behaviour)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDenialsTotal counts requests stopped by the middleware chain.
// Label:
//   - reason: "unauthenticated" (missing/invalid token) or "forbidden"
//     (role mismatch)
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denials_total",
		Help:      "Total number of requests denied by the auth or RBAC middleware.",
	},
	[]string{"reason"},
)
