// Package metrics holds the Prometheus collectors for account and password
// recovery outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values for AuthOutcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics contains the custom TrapIT collectors. A nil *Metrics is valid and
// records nothing, so services can run without a registry in tests.
type Metrics struct {
	AuthOutcomes        *prometheus.CounterVec
	OTPIssued           prometheus.Counter
	OTPDeliveryFailures prometheus.Counter
	OTPSwept            prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AuthOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trapit_auth_operations_total",
				Help: "Total number of account operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		OTPIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trapit_otp_issued_total",
			Help: "Total number of password reset codes stored",
		}),
		OTPDeliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trapit_otp_delivery_failures_total",
			Help: "Total number of password reset codes that could not be delivered",
		}),
		OTPSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trapit_otp_swept_total",
			Help: "Total number of expired password reset codes removed by housekeeping",
		}),
	}

	reg.MustRegister(m.AuthOutcomes, m.OTPIssued, m.OTPDeliveryFailures, m.OTPSwept)
	return m
}

// NewRegistry returns a private registry with the Go and process collectors
// plus the TrapIT metrics.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg, NewMetrics(reg)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordAuth(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthOutcomes.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordOTPIssued() {
	if m == nil {
		return
	}
	m.OTPIssued.Inc()
}

func (m *Metrics) RecordOTPDeliveryFailure() {
	if m == nil {
		return
	}
	m.OTPDeliveryFailures.Inc()
}

func (m *Metrics) RecordOTPSwept(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.OTPSwept.Add(float64(n))
}
