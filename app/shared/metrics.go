package shared

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors shared by all module handlers.
type Metrics struct {
	HandlerSuccess *prometheus.CounterVec
	HandlerFailure *prometheus.CounterVec
	RaceOperations *prometheus.CounterVec
	LivePushes     prometheus.Counter
}

// NewMetrics registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HandlerSuccess: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_handler_success_total",
			Help: "Number of successfully handled events, by handler.",
		}, []string{"handler"}),
		HandlerFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_handler_failure_total",
			Help: "Number of failed events, by handler.",
		}, []string{"handler"}),
		RaceOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_sokuji_race_operations_total",
			Help: "Race list mutations, by operation (add, back, edit).",
		}, []string{"operation"}),
		LivePushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "bot_sokuji_live_pushes_total",
			Help: "Live score payload deliveries to banner subscribers.",
		}),
	}
}

// NoOpMetrics returns a Metrics instance backed by a throwaway registry.
// Intended for tests.
func NoOpMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
