package services

import "github.com/prometheus/client_golang/prometheus"

// Send results recorded by DispatchMetrics.
const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

// DispatchMetrics counts message sends and dispatch batches.
type DispatchMetrics struct {
	MessagesSent *prometheus.CounterVec
	Batches      prometheus.Counter
}

// NewDispatchMetrics creates the collectors and registers them on reg when reg is not nil.
func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	m := &DispatchMetrics{
		MessagesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rng",
				Name:      "messages_sent_total",
				Help:      "Messages handed to a delivery channel, by channel and result.",
			},
			[]string{"channel", "result"},
		),
		Batches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "rng",
				Name:      "dispatch_batches_total",
				Help:      "Message action executions that had a template collection.",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.MessagesSent, m.Batches)
	}
	return m
}

func (m *DispatchMetrics) observeSend(channel, result string) {
	if m == nil {
		return
	}
	m.MessagesSent.WithLabelValues(channel, result).Inc()
}

func (m *DispatchMetrics) observeBatch() {
	if m == nil {
		return
	}
	m.Batches.Inc()
}
