package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "velocity").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "velocity",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector exposes runtime and resource cache state as Prometheus
// metrics. Counts are sampled at scrape time, so the collector adds no
// overhead to the reactive hot path.
type Collector struct {
	rt    *velocity.Runtime
	cache *resource.Cache

	signals   *prometheus.Desc
	effects   *prometheus.Desc
	resources *prometheus.Desc

	fetchHits   *prometheus.Desc
	fetchMisses *prometheus.Desc
	fetches     *prometheus.Desc
	fetchErrors *prometheus.Desc
}

// NewCollector creates a collector over the given runtime and cache.
// Either may be nil, in which case its metrics are omitted.
func NewCollector(rt *velocity.Runtime, cache *resource.Cache, opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	name := func(n string) string {
		return prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, n)
	}

	return &Collector{
		rt:    rt,
		cache: cache,
		signals: prometheus.NewDesc(name("signals"),
			"Number of live signals.", nil, cfg.ConstLabels),
		effects: prometheus.NewDesc(name("effects"),
			"Number of live effects.", nil, cfg.ConstLabels),
		resources: prometheus.NewDesc(name("resources"),
			"Number of cached resource entries.", nil, cfg.ConstLabels),
		fetchHits: prometheus.NewDesc(name("resource_hits_total"),
			"Resource requests served from an existing entry.", nil, cfg.ConstLabels),
		fetchMisses: prometheus.NewDesc(name("resource_misses_total"),
			"Resource requests that dispatched a fetch.", nil, cfg.ConstLabels),
		fetches: prometheus.NewDesc(name("resource_fetches_total"),
			"Resource fetches executed.", nil, cfg.ConstLabels),
		fetchErrors: prometheus.NewDesc(name("resource_fetch_errors_total"),
			"Resource fetches that failed.", nil, cfg.ConstLabels),
	}
}

// Register creates a collector and registers it with the configured
// registry.
func Register(rt *velocity.Runtime, cache *resource.Cache, opts ...Option) (*Collector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := NewCollector(rt, cache, opts...)
	if err := cfg.Registry.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.signals
	ch <- c.effects
	ch <- c.resources
	ch <- c.fetchHits
	ch <- c.fetchMisses
	ch <- c.fetches
	ch <- c.fetchErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.rt != nil {
		m := c.rt.Metrics()
		ch <- prometheus.MustNewConstMetric(c.signals, prometheus.GaugeValue, float64(m.SignalCount))
		ch <- prometheus.MustNewConstMetric(c.effects, prometheus.GaugeValue, float64(m.EffectCount))
	}
	if c.cache != nil {
		ch <- prometheus.MustNewConstMetric(c.resources, prometheus.GaugeValue, float64(c.cache.Len()))

		stats := c.cache.Stats()
		ch <- prometheus.MustNewConstMetric(c.fetchHits, prometheus.CounterValue, float64(stats.Hits))
		ch <- prometheus.MustNewConstMetric(c.fetchMisses, prometheus.CounterValue, float64(stats.Misses))
		ch <- prometheus.MustNewConstMetric(c.fetches, prometheus.CounterValue, float64(stats.Fetches))
		ch <- prometheus.MustNewConstMetric(c.fetchErrors, prometheus.CounterValue, float64(stats.Errors))
	}
}
