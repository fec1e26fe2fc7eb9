package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder instruments outgoing API calls with Prometheus collectors.
type Recorder struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	uploadFallbacks prometheus.Counter
}

// NewRecorder registers the client collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siswa_client_requests_total",
		Help: "Total number of API requests issued by the client",
	}, []string{"method", "endpoint", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siswa_client_request_duration_seconds",
		Help:    "Duration of API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	uploadFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "siswa_client_upload_fallbacks_total",
		Help: "Submissions that fell back to a filename placeholder after a failed upload",
	})

	registry.MustRegister(requestTotal, requestDuration, uploadFallbacks)

	return &Recorder{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		uploadFallbacks: uploadFallbacks,
	}
}

// ObserveRequest records one finished API call.
func (r *Recorder) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.requestTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// ObserveUploadFallback counts a degraded-mode submission.
func (r *Recorder) ObserveUploadFallback() {
	if r == nil {
		return
	}
	r.uploadFallbacks.Inc()
}

// Registry exposes the underlying registry for exposition or test assertions.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
