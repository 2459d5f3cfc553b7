// Package metrics defines all Prometheus metrics of the storefront client and
// its reference API. Every metric is registered on the default registry at
// package initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Client metrics ────────────────────────────────────────────────────────────

// APIRequestsTotal counts outbound requests to the storefront API.
// Labels:
//   - method: HTTP method
//   - route: request path with numeric segments collapsed to ":id"
//   - code: response status code, or "error" for transport failures
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "api_requests_total",
		Help:      "Total number of requests sent to the storefront API.",
	},
	[]string{"method", "route", "code"},
)

// APIRequestDuration measures round-trip latency of outbound requests.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "api_request_duration_seconds",
		Help:      "Round-trip duration of requests sent to the storefront API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// SessionEventsTotal counts session lifecycle transitions.
// Label:
//   - event: "login", "login_failed", "logout", "hydrated", "hydrate_failed", "refreshed"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)

// CartOperationsTotal counts cart store operations.
// Labels:
//   - op: "fetch", "add", "update", "remove", "clear"
//   - result: "ok" or "error"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "cart_operations_total",
		Help:      "Total number of cart operations, by outcome.",
	},
	[]string{"op", "result"},
)

// ── Reference API metrics ─────────────────────────────────────────────────────

// HTTPRequestsTotal counts requests served by the reference API.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mockapi",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served by the reference API.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures handler latency of the reference API.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mockapi",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests served by the reference API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// MailsTotal counts outbox deliveries.
// Labels:
//   - kind: "verification", "password_reset", "order_confirmation"
//   - result: "sent", "error" or "dropped"
var MailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mockapi",
		Name:      "mails_total",
		Help:      "Total number of outbox mails processed, by kind and result.",
	},
	[]string{"kind", "result"},
)

// MailQueueDepth tracks pending mails in each outbox worker channel.
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mockapi",
		Name:      "mail_queue_depth",
		Help:      "Current number of mails pending in each outbox worker channel.",
	},
	[]string{"worker_id"},
)
