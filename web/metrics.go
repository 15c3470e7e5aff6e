package web

import (
	"bytes"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

const (
	metricsNamespace = "biblioteca"

	OutcomeRender   = "render"
	OutcomeRedirect = "redirect"
)

// Metrics holds the shell's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Resolutions    *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "router",
				Name:      "resolutions_total",
				Help:      "Route resolutions by target and outcome.",
			},
			[]string{"target", "outcome"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "shell",
				Name:      "render_seconds",
				Help:      "Time spent rendering the shell document.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"target"},
		),
	}

	m.registry.MustRegister(m.Resolutions, m.RenderDuration)
	return m
}

// ObserveResolution counts one resolution
func (m *Metrics) ObserveResolution(target, outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(target, outcome).Inc()
}

// ObserveRender records how long a render took
func (m *Metrics) ObserveRender(target string, d time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.WithLabelValues(target).Observe(d.Seconds())
}

// Expose writes all collected metrics in the Prometheus text format
func (m *Metrics) Expose() ([]byte, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, serr.Wrap(err, "failed to gather metrics")
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, serr.Wrap(err, "failed to encode metric family")
		}
	}
	return buf.Bytes(), nil
}

// Handler serves the metrics endpoint
func (m *Metrics) Handler(c rweb.Context) error {
	body, err := m.Expose()
	if err != nil {
		logger.LogErr(err, "metrics exposition failed")
		return ServerError(c)
	}
	c.Response().SetHeader("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	return c.Bytes(body)
}
