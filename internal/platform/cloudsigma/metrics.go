package cloudsigma

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ccs",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of CloudSigma API requests by resource, method and status code",
			},
			[]string{"resource", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ccs",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Duration of CloudSigma API requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"resource", "method"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requestsTotal, m.requestDuration)
	}
	return m
}

// observe records one request. A zero status means the request failed
// before a response was received.
func (m *metrics) observe(path, method string, status int, elapsed time.Duration) {
	code := "error"
	if status != 0 {
		code = strconv.Itoa(status)
	}
	res := resourceLabel(path)
	m.requestsTotal.WithLabelValues(res, method, code).Inc()
	m.requestDuration.WithLabelValues(res, method).Observe(elapsed.Seconds())
}

// resourceLabel reduces a request path to its collection name so uuids do
// not end up in label values.
func resourceLabel(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}
