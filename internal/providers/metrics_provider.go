package providers

import (
	"pidash/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRefreshesTotal(widget string, result string)
	ObserveRefreshDuration(widget string, duration time.Duration)
	ObserveUpstreamDuration(path string, duration time.Duration)
	SetLastSuccess(widget string, ts time.Time)
	SetBlockingEnabled(enabled bool)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	refreshesTotal   *prometheus.CounterVec
	refreshDuration  *prometheus.HistogramVec
	upstreamDuration *prometheus.HistogramVec
	lastSuccess      *prometheus.GaugeVec
	blockingEnabled  prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRefreshesTotal(widget string, result string) {
	m.refreshesTotal.WithLabelValues(widget, result).Inc()
}

func (m *MetricsProvider) ObserveRefreshDuration(widget string, duration time.Duration) {
	m.refreshDuration.WithLabelValues(widget).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveUpstreamDuration(path string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(path).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetLastSuccess(widget string, ts time.Time) {
	m.lastSuccess.WithLabelValues(widget).Set(float64(ts.Unix()))
}

func (m *MetricsProvider) SetBlockingEnabled(enabled bool) {
	if enabled {
		m.blockingEnabled.Set(1)
	} else {
		m.blockingEnabled.Set(0)
	}
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pidash_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pidash_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pidash_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pidash_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		refreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pidash_refreshes_total",
			Help: "Total number of widget refresh cycles by result",
		}, []string{"widget", "result"}),

		refreshDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pidash_refresh_duration_seconds",
			Help:    "Widget refresh cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"widget"}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pidash_upstream_request_duration_seconds",
			Help:    "Appliance API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),

		lastSuccess: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pidash_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful refresh per widget",
		}, []string{"widget"}),

		blockingEnabled: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pidash_blocking_enabled",
			Help: "Whether the appliance reports ad blocking as enabled",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncRefreshesTotal(_ string, _ string)              {}
func (n *noopMetrics) ObserveRefreshDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) SetLastSuccess(_ string, _ time.Time)              {}
func (n *noopMetrics) SetBlockingEnabled(_ bool)                         {}
