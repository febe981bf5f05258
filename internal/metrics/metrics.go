package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chatbot counters, labeled so dashboards can break traffic down by what
// the router and classifier decided.
var (
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mentora",
		Subsystem: "chatbot",
		Name:      "requests_total",
		Help:      "Chat requests served, by routed intent.",
	}, []string{"intent"})

	EmotionVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mentora",
		Subsystem: "chatbot",
		Name:      "emotion_verdicts_total",
		Help:      "Emotion classification outcomes on mental-health messages.",
	}, []string{"label"})

	UnansweredQueries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mentora",
		Subsystem: "chatbot",
		Name:      "unanswered_queries_total",
		Help:      "Queries no corpus or knowledge entry could answer.",
	})

	SessionRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mentora",
		Subsystem: "chatbot",
		Name:      "session_rejections_total",
		Help:      "Chat requests rejected by the session gate.",
	})

	ChatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mentora",
		Subsystem: "chatbot",
		Name:      "request_duration_seconds",
		Help:      "End-to-end chat handling latency.",
		Buckets:   prometheus.DefBuckets,
	})
)
