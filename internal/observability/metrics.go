package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess    = "success"
	ResultValidation = "validation_error"
	ResultStorage    = "storage_error"
	ResultPersist    = "persistence_error"
	ResultConflict   = "conflict"
)

type Metrics struct {
	HTTPRequestTotal       *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	ProfilePictureUpdates  *prometheus.CounterVec
	ProfilePictureDuration prometheus.Histogram
	OrphanedBlobs          prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of http request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		ProfilePictureUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_picture_updates_total",
				Help: "Profile picture updates by result",
			},
			[]string{"result"},
		),
		ProfilePictureDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "profile_picture_update_duration_seconds",
				Help:    "Duration of profile picture updates",
				Buckets: prometheus.DefBuckets,
			},
		),
		OrphanedBlobs: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "profile_picture_orphaned_blobs_total",
				Help: "Blobs that could not be removed after a profile picture update",
			},
		),
	}
}

// ObserveProfilePictureUpdate is a no-op on a nil receiver.
func (m *Metrics) ObserveProfilePictureUpdate(result string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.ProfilePictureUpdates.WithLabelValues(result).Inc()
	m.ProfilePictureDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) AddOrphanedBlobs(count int) {
	if m == nil {
		return
	}

	m.OrphanedBlobs.Add(float64(count))
}
