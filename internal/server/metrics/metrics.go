// Package metrics defines the Prometheus metrics of the sandbox API. They
// are registered with the default registry when the package loads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devraha_sandbox"

// AuthRequestsTotal counts account API requests.
// Labels:
//   - kind: "user" or "admin"
//   - endpoint: the last path segment (e.g. "login", "verify-otp")
//   - outcome: "ok" for 2xx/3xx answers, "client_error" for 4xx, "server_error" otherwise
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of account API requests by kind, endpoint and outcome.",
	},
	[]string{"kind", "endpoint", "outcome"},
)

// AuthRequestDuration measures handler latency per kind and endpoint.
var AuthRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_request_duration_seconds",
		Help:      "Duration of account API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind", "endpoint"},
)

// MailsSentTotal counts outgoing emails by type and result ("sent" or "failed").
var MailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of account emails handed to the mailer.",
	},
	[]string{"type", "result"},
)

// Outcome buckets an HTTP status for AuthRequestsTotal.
func Outcome(status int) string {
	switch {
	case status >= 500:
		return "server_error"
	case status >= 400:
		return "client_error"
	default:
		return "ok"
	}
}
