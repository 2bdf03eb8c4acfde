package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/numwords/pkg/numwords"
)

// Conversion results recorded by Metrics.
const (
	ResultOK           = "ok"
	ResultInvalidInput = "invalid_input"
	ResultError        = "error"
)

// Metrics holds the collectors of the API.
type Metrics struct {
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numwords",
			Name:      "conversions_total",
			Help:      "Number conversions by grouping style, rendering mode and result.",
		}, []string{"style", "mode", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "numwords",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	for _, c := range []prometheus.Collector{m.conversions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveConversion counts one conversion made with opts.
func (m *Metrics) ObserveConversion(opts numwords.Options, err error) {
	if m == nil {
		return
	}
	style, mode := numwords.Describe(opts)
	result := ResultOK
	switch {
	case errors.Is(err, numwords.ErrInvalidInput):
		result = ResultInvalidInput
	case err != nil:
		result = ResultError
	}
	m.conversions.WithLabelValues(style, mode, result).Inc()
}

// Instrument records the latency of every request under its route pattern.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		m.duration.
			WithLabelValues(routePattern(r), strconv.Itoa(statusOf(ww))).
			Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
