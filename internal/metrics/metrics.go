// Package metrics exposes order lifecycle counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/lifecycle"
)

// Module provides a dedicated registry and the lifecycle collectors.
var Module = fx.Provide(
	func() *prometheus.Registry { return prometheus.NewRegistry() },
	New,
)

// Lifecycle counts transitions and withdrawals.
type Lifecycle struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	withdrawals prometheus.Counter
	gross       prometheus.Counter
	fees        prometheus.Counter
}

// New registers collectors on registry.
func New(registry *prometheus.Registry) (*Lifecycle, error) {
	m := &Lifecycle{
		registry: registry,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lusunpay",
			Name:      "order_transitions_total",
			Help:      "Order lifecycle transitions by operation and outcome.",
		}, []string{"operation", "outcome"}),
		withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lusunpay",
			Name:      "withdrawals_total",
			Help:      "Completed balance withdrawals.",
		}),
		gross: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lusunpay",
			Name:      "withdrawn_gross_amount_total",
			Help:      "Sum of withdrawn balances before fees.",
		}),
		fees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lusunpay",
			Name:      "withdrawal_fees_amount_total",
			Help:      "Sum of service fees charged on withdrawals.",
		}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.withdrawals, m.gross, m.fees} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Transition records the outcome of a lifecycle operation.
func (m *Lifecycle) Transition(operation string, outcome lifecycle.Outcome) {
	m.transitions.WithLabelValues(operation, outcome.String()).Inc()
}

// Withdrawal records a completed sweep.
func (m *Lifecycle) Withdrawal(gross, fee decimal.Decimal) {
	m.withdrawals.Inc()
	m.gross.Add(gross.InexactFloat64())
	m.fees.Add(fee.InexactFloat64())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Lifecycle) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
