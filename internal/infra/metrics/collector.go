// Package metrics exposes the Prometheus instruments of targeting and dispatch.
package metrics

import (
	"time"

	"marketplace/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Push outcomes recorded by ObservePush.
const (
	PushSent      = "sent"
	PushFailed    = "failed"
	PushInvalid   = "invalid_token"
	PushDuplicate = "duplicate"
)

// Collector groups the service's instruments. A nil *Collector records nothing.
type Collector struct {
	targetingRequests   *prometheus.CounterVec
	targetingCandidates *prometheus.CounterVec
	targetingDuration   *prometheus.HistogramVec
	lookupFailures      *prometheus.CounterVec
	dispatchPushes      *prometheus.CounterVec
}

// NewCollector registers every instrument on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		targetingRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "targeting_requests_total",
			Help: "Targeting computations by request type and the rule that served them.",
		}, []string{"request_type", "rule"}),
		targetingCandidates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "targeting_candidates_total",
			Help: "Businesses selected for notification.",
		}, []string{"request_type"}),
		targetingDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "targeting_duration_seconds",
			Help:    "Time spent loading the candidate pool and ranking it.",
			Buckets: prometheus.DefBuckets,
		}, []string{"rule"}),
		lookupFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "business_lookup_failures_total",
			Help: "Business directory reads that failed.",
		}, []string{"operation"}),
		dispatchPushes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_push_total",
			Help: "Push notification outcomes per device.",
		}, []string{"status"}),
	}
}

// ObserveTargeting records one successful targeting computation.
func (c *Collector) ObserveTargeting(result *entity.TargetingResult, elapsed time.Duration) {
	if c == nil || result == nil {
		return
	}

	requestType := string(result.RequestType)
	c.targetingRequests.WithLabelValues(requestType, string(result.Rule)).Inc()
	c.targetingCandidates.WithLabelValues(requestType).Add(float64(len(result.Candidates)))
	c.targetingDuration.WithLabelValues(string(result.Rule)).Observe(elapsed.Seconds())
}

// LookupFailed counts a failed business directory read.
func (c *Collector) LookupFailed(operation string) {
	if c == nil {
		return
	}

	c.lookupFailures.WithLabelValues(operation).Inc()
}

// ObservePush adds n device outcomes of one status.
func (c *Collector) ObservePush(status string, n int) {
	if c == nil || n <= 0 {
		return
	}

	c.dispatchPushes.WithLabelValues(status).Add(float64(n))
}
