// Package metrics exports planner runs as Prometheus metrics.
//
// A Collector implements planner.Observer. Register it on any
// prometheus.Registerer; batch runs can dump the registry to a
// node-exporter textfile with WriteTextfile.
package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/valveplan/planner"
	"github.com/katalvlaran/valveplan/route"
)

const namespace = "valveplan"

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeTimeLimit = "time_limit"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Collector records one sample set per planner run.
type Collector struct {
	plans     *prometheus.CounterVec
	expanded  prometheus.Counter
	pruned    prometheus.Counter
	generated prometheus.Counter
	duration  *prometheus.HistogramVec
	best      *prometheus.GaugeVec
}

var _ planner.Observer = (*Collector)(nil)

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Plans computed, by agent count and outcome.",
		}, []string{"agents", "outcome"}),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_expanded_total",
			Help:      "Search states expanded across all plans.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_pruned_total",
			Help:      "Search states discarded by the bound across all plans.",
		}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_generated_total",
			Help:      "Search states generated across all plans.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Wall-clock duration of planner runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"agents"}),
		best: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_value",
			Help:      "Total release of the most recent successful plan.",
		}, []string{"agents"}),
	}
	for _, col := range []prometheus.Collector{c.plans, c.expanded, c.pruned, c.generated, c.duration, c.best} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewRegistry returns a registry preloaded with the Go runtime and
// process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return reg
}

// ObservePlan implements planner.Observer.
func (c *Collector) ObservePlan(rep planner.Report) {
	agents := strconv.Itoa(rep.Agents)
	outcome := Outcome(rep.Err)

	c.plans.WithLabelValues(agents, outcome).Inc()
	c.expanded.Add(float64(rep.Stats.Expanded))
	c.pruned.Add(float64(rep.Stats.Pruned))
	c.generated.Add(float64(rep.Stats.Generated))
	c.duration.WithLabelValues(agents).Observe(rep.Elapsed.Seconds())
	if outcome == OutcomeOK {
		c.best.WithLabelValues(agents).Set(float64(rep.Value))
	}
}

// Outcome classifies a run error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, route.ErrTimeLimit), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeLimit
	case errors.Is(err, context.Canceled):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// WriteTextfile writes every metric of g to path in the text exposition
// format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
