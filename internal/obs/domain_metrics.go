package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// ComputationsTotal counts price computation outcomes.
	ComputationsTotal *prometheus.CounterVec
	// UpstreamRequestsTotal counts collaborator fetch outcomes per service.
	UpstreamRequestsTotal *prometheus.CounterVec
	// UpstreamLatency records collaborator request latency in milliseconds.
	UpstreamLatency *prometheus.HistogramVec
	// LedgerAppendsTotal counts records appended to the revenue ledger.
	LedgerAppendsTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		ComputationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Count of price computation outcomes.",
		}, []string{"result"})
		UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Count of collaborator fetch outcomes.",
		}, []string{"service", "result"})
		UpstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_ms",
			Help:      "Latency of collaborator requests in milliseconds.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"service"})
		LedgerAppendsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_appends_total",
			Help:      "Number of calculation records appended to the ledger.",
		})

		mustRegisterCollector(reg, ComputationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ComputationsTotal = v
			}
		})
		mustRegisterCollector(reg, UpstreamRequestsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				UpstreamRequestsTotal = v
			}
		})
		mustRegisterCollector(reg, UpstreamLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				UpstreamLatency = v
			}
		})
		mustRegisterCollector(reg, LedgerAppendsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				LedgerAppendsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
