package metrics

import "github.com/prometheus/client_golang/prometheus"

// WidgetMetrics exposes counters/histograms for the widget's backend calls.
type WidgetMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	leadsSubmitted prometheus.Counter
}

func NewWidgetMetrics(reg prometheus.Registerer) *WidgetMetrics {
	m := &WidgetMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "transport",
			Name:      "requests_total",
			Help:      "Total backend requests issued by the widget",
		}, []string{"op", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leadbot",
			Subsystem: "transport",
			Name:      "request_latency_seconds",
			Help:      "Latency of backend requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		leadsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "session",
			Name:      "leads_submitted_total",
			Help:      "Leads successfully captured",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.leadsSubmitted)
	return m
}

func (m *WidgetMetrics) ObserveRequest(op, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(op, status).Inc()
	m.requestLatency.WithLabelValues(op).Observe(seconds)
}

func (m *WidgetMetrics) ObserveLeadSubmitted() {
	if m == nil {
		return
	}
	m.leadsSubmitted.Inc()
}
