// Package metrics instruments line-shape models with Prometheus collectors.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-qens/lineshape"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns the evaluation collectors on a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	samples     *prometheus.CounterVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lineshape_evaluations_total",
			Help: "Model evaluations by model and outcome.",
		}, []string{"model", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lineshape_evaluation_seconds",
			Help:    "Model evaluation latency.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"model"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lineshape_output_samples_total",
			Help: "Samples produced by successful evaluations.",
		}, []string{"model"}),
	}
	r.registry.MustRegister(r.evaluations, r.duration, r.samples)
	return r
}

// Registry exposes the collectors, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one evaluation.
func (r *Recorder) Observe(model string, d time.Duration, n int, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	} else {
		r.samples.WithLabelValues(model).Add(float64(n))
	}
	r.evaluations.WithLabelValues(model, outcome).Inc()
	r.duration.WithLabelValues(model).Observe(d.Seconds())
}

// WriteTextfile writes the current values in the text exposition format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return errors.New("metrics: empty textfile path")
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

// Instrument wraps m so that every Eval is recorded under m.Name().
func (r *Recorder) Instrument(m lineshape.Model) lineshape.Model {
	return &instrumented{Model: m, rec: r}
}

type instrumented struct {
	lineshape.Model
	rec *Recorder
}

func (i *instrumented) Eval(x []float64, p lineshape.Params) ([]float64, error) {
	start := time.Now()
	y, err := i.Model.Eval(x, p)
	i.rec.Observe(i.Model.Name(), time.Since(start), len(y), err)
	return y, err
}

// Guess forwards to the wrapped model when it is a lineshape.Guesser.
func (i *instrumented) Guess(y, x []float64) (lineshape.Params, error) {
	g, ok := i.Model.(lineshape.Guesser)
	if !ok {
		return nil, ErrNoGuesser
	}
	return g.Guess(y, x)
}

// ErrNoGuesser is returned by Guess on an instrumented model whose wrapped
// model cannot guess.
var ErrNoGuesser = errors.New("metrics: model does not implement Guess")
