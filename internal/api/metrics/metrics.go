// Package metrics defines and registers all custom Prometheus metrics for the
// HRMS session gateway. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrms"

// SessionLoginsTotal counts authentication attempts.
// Labels:
//   - method: "password", "google", or "register"
//   - result: "success" or "failure"
var SessionLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logins_total",
		Help:      "Total number of authentication attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// GateDecisionsTotal counts protected-route decisions.
// Label:
//   - decision: "loading", "redirect_to_login", "forbidden", "redirect_no_project", "allow"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of route-gate decisions, by outcome.",
	},
	[]string{"decision"},
)

// NotificationPollsTotal counts notification inbox fetches from the poller.
// Label:
//   - result: "ok" or "error"
var NotificationPollsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_polls_total",
		Help:      "Total number of notification poll cycles, by result.",
	},
	[]string{"result"},
)

// NotificationPollDuration measures one poll cycle end-to-end.
var NotificationPollDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_poll_duration_seconds",
		Help:      "Duration of a notification poll cycle.",
		Buckets:   prometheus.DefBuckets,
	},
)

// NotificationsUnread tracks the cached unread count after each poll.
var NotificationsUnread = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_unread",
		Help:      "Current unread notification count held in the local cache.",
	},
)

// ProxyRequestsTotal counts requests forwarded to the HRMS backend.
// Labels:
//   - method: HTTP method of the forwarded request
//   - status: upstream HTTP status code class (e.g. "2xx", "4xx", "5xx")
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of requests proxied to the HRMS backend.",
	},
	[]string{"method", "status"},
)
