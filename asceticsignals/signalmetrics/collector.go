// Package signalmetrics exports signal activity as Prometheus metrics.
package signalmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds collector configuration.
type Config struct {
	Namespace   string
	SlotBuckets []float64
}

// DefaultConfig returns default collector configuration.
func DefaultConfig() Config {
	return Config{
		Namespace:   "signals",
		SlotBuckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	}
}

// Collector implements signals.Recorder on top of a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	connections    *prometheus.CounterVec
	disconnections *prometheus.CounterVec
	emissions      *prometheus.CounterVec
	slotsPerEmit   *prometheus.HistogramVec
	slotPanics     *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector(cfg Config) *Collector {
	if cfg.SlotBuckets == nil {
		cfg.SlotBuckets = DefaultConfig().SlotBuckets
	}
	c := &Collector{registry: prometheus.NewRegistry()}

	c.connections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "connections_total",
			Help:      "Total number of slots connected",
		},
		[]string{"signal"},
	)
	c.disconnections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "disconnections_total",
			Help:      "Total number of slots disconnected",
		},
		[]string{"signal"},
	)
	c.emissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "emissions_total",
			Help:      "Total number of emissions",
		},
		[]string{"signal"},
	)
	c.slotsPerEmit = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "emission_slots",
			Help:      "Number of slots invoked per emission",
			Buckets:   cfg.SlotBuckets,
		},
		[]string{"signal"},
	)
	c.slotPanics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "slot_panics_total",
			Help:      "Total number of slot panics recovered by TryEmit and EmitAll",
		},
		[]string{"signal"},
	)

	c.registry.MustRegister(c.connections)
	c.registry.MustRegister(c.disconnections)
	c.registry.MustRegister(c.emissions)
	c.registry.MustRegister(c.slotsPerEmit)
	c.registry.MustRegister(c.slotPanics)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the collected metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordConnected(signal string) {
	c.connections.WithLabelValues(signal).Inc()
}

func (c *Collector) RecordDisconnected(signal string) {
	c.disconnections.WithLabelValues(signal).Inc()
}

func (c *Collector) RecordEmitted(signal string, slots int) {
	c.emissions.WithLabelValues(signal).Inc()
	c.slotsPerEmit.WithLabelValues(signal).Observe(float64(slots))
}

func (c *Collector) RecordSlotPanicked(signal string) {
	c.slotPanics.WithLabelValues(signal).Inc()
}
