// Package metrics defines the custom Prometheus metrics of the storefront API.
// Counters are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// Login outcomes used as the "result" label of LoginAttemptsTotal.
const (
	LoginSuccess     = "success"
	LoginInvalid     = "invalid_credentials"
	LoginLockedOut   = "locked_out"
	LoginMalformed   = "malformed"
	LoginServerError = "error"
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: one of the Login* constants
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// CartOperationsTotal counts cart API calls.
// Labels:
//   - operation: "get", "add", "remove" or "increment"
//   - result: "ok", "unauthorized" or "error"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart operations, by operation and outcome.",
	},
	[]string{"operation", "result"},
)

// RegisterSessionGauge exposes the number of stored access tokens, expired
// ones included, as storefront_sessions_stored.
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_stored",
			Help:      "Number of access tokens held in memory.",
		},
		func() float64 { return float64(count()) },
	))
}
