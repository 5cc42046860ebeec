package metrics

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
)

type Options struct {
	Namespace string
	// Buckets are fixed for the life of the registry.
	Buckets           []float64
	RuntimeCollectors bool
}

// Registry owns every series the service exposes. It is created once at
// startup and shared by all requests; the underlying vectors are safe for
// concurrent use.
type Registry struct {
	registry  *prometheus.Registry
	namespace string
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	format    expfmt.Format
}

func NewRegistry(opts Options) (*Registry, error) {
	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}
	if err := validateBuckets(buckets); err != nil {
		return nil, err
	}

	r := &Registry{
		registry:  prometheus.NewRegistry(),
		namespace: opts.Namespace,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of completed HTTP requests.",
			},
			[]string{labelMethod, labelRoute},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: opts.Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   slices.Clone(buckets),
			},
			[]string{labelMethod, labelRoute},
		),
		format: expfmt.NewFormat(expfmt.TypeTextPlain),
	}

	cs := []prometheus.Collector{r.requests, r.duration}
	if opts.RuntimeCollectors {
		cs = append(cs,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: opts.Namespace}),
		)
	}
	for _, c := range cs {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return r, nil
}

// Observe records one completed request under (method, route). route must be
// a route template, never a raw path. status is not a label: every request
// lands in exactly one counter and one histogram series.
func (r *Registry) Observe(method, route string, status int, duration time.Duration) {
	r.requests.WithLabelValues(method, route).Inc()
	r.duration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Render writes the text exposition of all series. Families and series are
// sorted, so two renders of unchanged state are byte-identical.
func (r *Registry) Render(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, r.format)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}

func (r *Registry) ContentType() string {
	return string(r.format)
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RegisterPool exposes connection pool gauges read from stat at scrape time.
func (r *Registry) RegisterPool(stat PoolStatFunc) error {
	if err := r.registry.Register(NewPoolCollector(r.namespace, stat)); err != nil {
		return fmt.Errorf("failed to register pool collector: %w", err)
	}
	return nil
}

func validateBuckets(buckets []float64) error {
	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			return fmt.Errorf("histogram buckets must be strictly increasing, got %v", buckets)
		}
	}
	return nil
}
