// Package obsmetrics exposes netsimplex's runtime behavior as Prometheus
// metrics, adapted from the teacher's pkg/metrics.RuntimeCollector: a
// custom prometheus.Collector instead of package-level globals, so a
// caller embedding the solver chooses whether and where to register it.
package obsmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/flowmetric/netsimplex"
)

// Collector aggregates counters across every Observe call. It is safe for
// concurrent use even though a single Solver is not, since a caller may run
// many sequential solves behind one shared collector.
type Collector struct {
	mu sync.Mutex

	pivotsTotal    float64
	solvesTotal    float64
	lastStatus     netsimplex.Status
	iterationsHist prometheus.Histogram
	durationHist   prometheus.Histogram
	pivotsDesc     *prometheus.Desc
	solvesDesc     *prometheus.Desc
	lastStatusDesc *prometheus.Desc
}

// New builds a Collector with metric names under namespace/subsystem,
// matching prometheus.BuildFQName's conventions in the teacher's collector.
func New(namespace, subsystem string) *Collector {
	return &Collector{
		iterationsHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "iterations_to_optimal",
			Help:      "Pivot iterations until a Solve call reached a terminal status.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		durationHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of a Solve call.",
			Buckets:   prometheus.DefBuckets,
		}),
		pivotsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "pivots_total"),
			"Total pivots performed across all Solve calls.",
			nil, nil,
		),
		solvesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "solves_total"),
			"Total Solve calls completed.",
			nil, nil,
		),
		lastStatusDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "last_status"),
			"Status code of the most recent Solve call.",
			[]string{"status"}, nil,
		),
	}
}

// Observe records one completed Solve call's result and duration.
func (c *Collector) Observe(result netsimplex.Result, durationSeconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pivotsTotal += float64(result.Stats.Pivots)
	c.solvesTotal++
	c.lastStatus = result.Status
	c.iterationsHist.Observe(float64(result.Iterations))
	c.durationHist.Observe(durationSeconds)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pivotsDesc
	ch <- c.solvesDesc
	ch <- c.lastStatusDesc
	c.iterationsHist.Describe(ch)
	c.durationHist.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.pivotsDesc, prometheus.CounterValue, c.pivotsTotal)
	ch <- prometheus.MustNewConstMetric(c.solvesDesc, prometheus.CounterValue, c.solvesTotal)
	for _, st := range []netsimplex.Status{
		netsimplex.StatusOptimal,
		netsimplex.StatusInfeasible,
		netsimplex.StatusUnbounded,
		netsimplex.StatusMaxIterReached,
		netsimplex.StatusInvalidInput,
	} {
		v := 0.0
		if st == c.lastStatus {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(c.lastStatusDesc, prometheus.GaugeValue, v, st.String())
	}
	c.iterationsHist.Collect(ch)
	c.durationHist.Collect(ch)
}
