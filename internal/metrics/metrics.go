// Package metrics records run statistics in a Prometheus registry that can be
// written out in the node-exporter textfile format after a build.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/sources"
)

const namespace = "draftboard"

// Recorder holds the run metrics. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry
	issues   *prometheus.CounterVec
	players  *prometheus.GaugeVec
	stages   *prometheus.GaugeVec
	cache    *prometheus.CounterVec
	lastRun  prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_total",
			Help:      "Recoverable conditions reported during the run.",
		}, []string{"source", "kind"}),
		players: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_players",
			Help:      "Players on the rendered board by position.",
		}, []string{"position"}),
		stages: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
		}, []string{"stage"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_lookups_total",
			Help:      "Dataset snapshot lookups by result.",
		}, []string{"result"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last build finished.",
		}),
	}
	reg.MustRegister(r.issues, r.players, r.stages, r.cache, r.lastRun)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Observe counts a reported issue.
func (r *Recorder) Observe(issue sources.Issue) {
	if r == nil {
		return
	}
	r.issues.WithLabelValues(string(issue.Source), string(issue.Kind)).Inc()
}

// RecordBoard sets the per-position player gauges.
func (r *Recorder) RecordBoard(counts map[string]int) {
	if r == nil {
		return
	}
	for pos, n := range counts {
		r.players.WithLabelValues(pos).Set(float64(n))
	}
}

// RecordStage stores how long a stage took.
func (r *Recorder) RecordStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.stages.WithLabelValues(stage).Set(d.Seconds())
}

// RecordSnapshot counts a dataset snapshot lookup.
func (r *Recorder) RecordSnapshot(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cache.WithLabelValues(result).Inc()
}

// MarkFinished stamps the completion time.
func (r *Recorder) MarkFinished(t time.Time) {
	if r == nil {
		return
	}
	r.lastRun.Set(float64(t.Unix()))
}

// WriteFile writes every metric to path in the Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
