package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry with the engine and publisher metrics.
type Collector struct {
	reg *prometheus.Registry

	DaysNormalized   prometheus.Counter
	SegmentsDropped  prometheus.Counter
	ValidationErrors prometheus.Counter
	SheetsComputed   prometheus.Counter
	BuildDuration    prometheus.Histogram
	SheetsPublished  prometheus.Counter
	SheetPublishErrs prometheus.Counter
	PublishDuration  prometheus.Histogram
	NATSConnected    prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		DaysNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_days_normalized_total",
			Help: "Total log days normalized into a 24-hour partition.",
		}),
		SegmentsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_segments_dropped_total",
			Help: "Input segments that were empty, cut by an override or fully overlapped.",
		}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_validation_errors_total",
			Help: "Trips rejected as structurally invalid.",
		}),
		SheetsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_sheets_built_total",
			Help: "Total day sheets computed.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hos_sheet_build_duration_seconds",
			Help:    "Duration to compute all sheets of one trip.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		SheetsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_sheets_published_total",
			Help: "Total day sheets published to NATS.",
		}),
		SheetPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hos_sheet_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hos_sheet_publish_duration_seconds",
			Help:    "Duration to marshal and publish one sheet.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hos_nats_connected",
			Help: "1 if the NATS connection is established, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.DaysNormalized, c.SegmentsDropped, c.ValidationErrors,
		c.SheetsComputed, c.BuildDuration,
		c.SheetsPublished, c.SheetPublishErrs, c.PublishDuration, c.NATSConnected,
	)

	return c
}

// DayNormalized, ValidationFailed and SheetsBuilt satisfy ports.EngineMetrics.
func (c *Collector) DayNormalized(droppedSegments int) {
	c.DaysNormalized.Inc()
	if droppedSegments > 0 {
		c.SegmentsDropped.Add(float64(droppedSegments))
	}
}

func (c *Collector) ValidationFailed() { c.ValidationErrors.Inc() }

func (c *Collector) SheetsBuilt(days int, d time.Duration) {
	c.SheetsComputed.Add(float64(days))
	c.BuildDuration.Observe(d.Seconds())
}

// Publisher hooks.
func (c *Collector) NATSPublishedInc()              { c.SheetsPublished.Inc() }
func (c *Collector) NATSPublishErrInc()             { c.SheetPublishErrs.Inc() }
func (c *Collector) PublishObserve(d time.Duration) { c.PublishDuration.Observe(d.Seconds()) }

func (c *Collector) NATSSetConnected(connected bool) {
	if connected {
		c.NATSConnected.Set(1)
		return
	}
	c.NATSConnected.Set(0)
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening addr=%s", addr)
	return srv
}
