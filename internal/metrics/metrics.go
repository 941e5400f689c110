// Package metrics exports conversion counters and dictionary stats to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var dictionaryDesc = prometheus.NewDesc(
	"phoneword_dictionary",
	"Loaded dictionary statistics by kind",
	[]string{"kind"},
	nil,
)

// StatsSource reports dictionary counters.
type StatsSource interface {
	Stats() map[string]int
}

// DictionaryCollector is a custom Prometheus collector that reads dictionary
// stats on each scrape.
type DictionaryCollector struct {
	source StatsSource
}

// Describe sends the metric descriptor to the channel.
func (c *DictionaryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- dictionaryDesc
}

// Collect emits one gauge per dictionary stat.
func (c *DictionaryCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	kinds := make([]string, 0, len(stats))
	for kind := range stats {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		ch <- prometheus.MustNewConstMetric(
			dictionaryDesc,
			prometheus.GaugeValue,
			float64(stats[kind]),
			kind,
		)
	}
}

// Recorder counts conversions on a private registry.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	numbers    prometheus.Counter
	unrendered prometheus.Counter
	renderings prometheus.Counter
	rejected   prometheus.Counter
	duration   prometheus.Histogram
}

// NewRecorder creates a recorder exporting stats from source.
func NewRecorder(source StatsSource) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		numbers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phoneword_numbers_total",
			Help: "Phone numbers converted",
		}),
		unrendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phoneword_numbers_unrendered_total",
			Help: "Phone numbers that produced no rendering",
		}),
		renderings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phoneword_renderings_total",
			Help: "Renderings produced across all numbers",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phoneword_requests_rejected_total",
			Help: "Requests refused before searching",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "phoneword_batch_duration_seconds",
			Help:    "Time spent converting one batch",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	r.registry.MustRegister(r.numbers, r.unrendered, r.renderings, r.rejected, r.duration)
	if source != nil {
		r.registry.MustRegister(&DictionaryCollector{source: source})
	}
	return r
}

// ObserveBatch records the outcome of one converted batch.
func (r *Recorder) ObserveBatch(results map[string][]string, elapsed time.Duration) {
	if r == nil {
		return
	}
	for _, renderings := range results {
		r.numbers.Inc()
		r.renderings.Add(float64(len(renderings)))
		if len(renderings) == 0 {
			r.unrendered.Inc()
		}
	}
	r.duration.Observe(elapsed.Seconds())
}

// Rejected records a request refused before searching.
func (r *Recorder) Rejected() {
	if r == nil {
		return
	}
	r.rejected.Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warnf("metrics server shutdown: %v", err)
		}
	}()

	log.Debugf("Serving metrics on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
