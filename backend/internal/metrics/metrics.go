package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Standard Prometheus collectors for CryptoBuddy sessions
var (
	// cryptobuddy_queries_total (counter): queries that reached the classifier
	QueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptobuddy_queries_total",
		Help: "Total number of queries classified",
	})

	// cryptobuddy_intent_total{intent=most_profitable|describe_asset|...}
	IntentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptobuddy_intent_total",
		Help: "Classification of query intent",
	}, []string{"intent"})

	// cryptobuddy_entity_mentions_total{asset=Bitcoin|...}
	EntityMentions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptobuddy_entity_mentions_total",
		Help: "Number of times an asset was mentioned in a query",
	}, []string{"asset"})

	// cryptobuddy_obligations_total{obligation=disclaimer|energy_note}
	ObligationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptobuddy_obligations_total",
		Help: "Number of policy obligations attached to replies",
	}, []string{"obligation"})

	// cryptobuddy_recovered_faults_total (counter): replies replaced by the apology
	RecoveredFaults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptobuddy_recovered_faults_total",
		Help: "Number of queries whose processing failed and was recovered",
	})

	// cryptobuddy_response_latency_seconds (histogram): time to build a reply
	ResponseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cryptobuddy_response_latency_seconds",
		Help:    "Reply construction latency in seconds",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
	})
)

// RecordQuery counts a classified query, its intent and its mentions
func RecordQuery(intent string, mentions []string) {
	QueriesTotal.Inc()
	IntentTotal.WithLabelValues(intent).Inc()
	for _, m := range mentions {
		EntityMentions.WithLabelValues(m).Inc()
	}
}

// RecordObligation increments the obligation counter
func RecordObligation(obligation string) {
	ObligationsTotal.WithLabelValues(obligation).Inc()
}

// RecordFault increments the recovered fault counter
func RecordFault() {
	RecoveredFaults.Inc()
}

// ObserveLatency records how long a reply took since start
func ObserveLatency(start time.Time) {
	ResponseLatency.Observe(time.Since(start).Seconds())
}
