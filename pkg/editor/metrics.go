package editor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the client's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "editorlink").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the client's Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts protocol traffic for one client. All methods are nil-safe
// so an unconfigured client skips collection entirely.
type Metrics struct {
	commandsSent     *prometheus.CounterVec
	bytesSent        prometheus.Counter
	eventsDispatched *prometheus.CounterVec
	decodeErrors     prometheus.Counter
	unknownTags      prometheus.Counter
	bytesReceived    prometheus.Counter
}

// NewMetrics creates and registers the client metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "editorlink",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		commandsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "commands_sent_total",
			Help:        "Commands encoded and handed to the transport.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"command"}),
		bytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "bytes_sent_total",
			Help:        "Encoded command bytes handed to the transport.",
			ConstLabels: cfg.ConstLabels,
		}),
		eventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "events_dispatched_total",
			Help:        "Decoded events delivered to listeners.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),
		decodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "decode_errors_total",
			Help:        "Inbound messages dropped because decoding failed.",
			ConstLabels: cfg.ConstLabels,
		}),
		unknownTags: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "unknown_tags_total",
			Help:        "Inbound messages skipped because the tag is unknown.",
			ConstLabels: cfg.ConstLabels,
		}),
		bytesReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "bytes_received_total",
			Help:        "Inbound message bytes surfaced by the transport.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

func (m *Metrics) commandSent(ct string, n int) {
	if m == nil {
		return
	}
	m.commandsSent.WithLabelValues(ct).Inc()
	m.bytesSent.Add(float64(n))
}

func (m *Metrics) eventDispatched(kind string) {
	if m == nil {
		return
	}
	m.eventsDispatched.WithLabelValues(kind).Inc()
}

func (m *Metrics) received(n int) {
	if m == nil {
		return
	}
	m.bytesReceived.Add(float64(n))
}

func (m *Metrics) decodeError() {
	if m == nil {
		return
	}
	m.decodeErrors.Inc()
}

func (m *Metrics) unknownTag() {
	if m == nil {
		return
	}
	m.unknownTags.Inc()
}
