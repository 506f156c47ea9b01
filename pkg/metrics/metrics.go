package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ActiveSessions        prometheus.Gauge
	SessionsOpened        prometheus.Counter
	SessionsClosed        *prometheus.CounterVec
	TurnsProcessed        *prometheus.CounterVec
	TurnDuration          prometheus.Histogram
	DiscountEscalations   *prometheus.CounterVec
	TimersFired           *prometheus.CounterVec
	AnnouncementDuration  *prometheus.HistogramVec
	AnnouncementsFailed   prometheus.Counter
	HTTPRequestsProcessed *prometheus.CounterVec
}

// NewMetrics registers every collector on reg. Pass a fresh
// prometheus.NewRegistry() in tests so repeated calls do not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "engagement_sessions_active",
			Help: "Current number of open engagement sessions",
		}),
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "engagement_sessions_opened_total",
			Help: "Total number of sessions opened",
		}),
		SessionsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_sessions_closed_total",
			Help: "Total number of sessions closed",
		}, []string{"cause"}),
		TurnsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_turns_total",
			Help: "Total number of visitor turns processed by classification rule",
		}, []string{"rule"}),
		TurnDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "engagement_turn_duration_seconds",
			Help:    "Time taken to process one visitor turn, typing delay included",
			Buckets: prometheus.DefBuckets,
		}),
		DiscountEscalations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_discount_escalations_total",
			Help: "Total number of discount tier escalations",
		}, []string{"reason", "percent"}),
		TimersFired: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_timer_fired_total",
			Help: "Total number of idle timers acted upon",
		}, []string{"kind"}),
		AnnouncementDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "announcement_operation_duration_seconds",
			Help:    "Time taken for discount announcement operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		AnnouncementsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "announcement_failures_total",
			Help: "Total number of discount announcements that could not be published",
		}),
		HTTPRequestsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_processed_total",
			Help: "Total number of HTTP requests handled",
		}, []string{"route", "status"}),
	}
}
