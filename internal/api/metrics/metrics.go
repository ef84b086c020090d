// Package metrics defines and registers all custom Prometheus metrics for the
// Havenly API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init;
// the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "havenly"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications performed by the
// auth middleware and the /auth/me endpoint.
// Label:
//   - result: "success", "invalid", or "revoked"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// RevocationsTotal counts explicit logouts that revoked a token.
var RevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of tokens revoked by logout.",
	},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created properties.
var PropertiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties created.",
	},
)

// RoomsCreatedTotal counts newly created rooms.
var RoomsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms created.",
	},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityRecordedTotal counts audit events accepted by the dispatcher.
// Label:
//   - action: the activity action name (e.g. "auth.login")
var ActivityRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_recorded_total",
		Help:      "Total number of activity events accepted for async persistence.",
	},
	[]string{"action"},
)

// ActivityDroppedTotal counts audit events dropped because a worker channel was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity events dropped due to backpressure.",
	},
)
