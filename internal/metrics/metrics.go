package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quizadmin"

// Registry is the Prometheus registry for all quiz-admin metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// WebhookDispatchesTotal counts outbound webhook attempts by kind and outcome.
// Outcomes: ok (2xx), rejected (non-2xx), error (transport failure).
var WebhookDispatchesTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_dispatches_total",
		Help:      "Total number of outbound webhook dispatch attempts",
	},
	[]string{"kind", "outcome"},
)
