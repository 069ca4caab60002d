package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yurykabanov/fsgc/pkg/domain"
)

const namespace = "fsgc"

// TextfileRecorder keeps per-target statistics of the current run and dumps
// them in the node_exporter textfile format. With an empty file name it only
// collects.
type TextfileRecorder struct {
	file     string
	registry *prometheus.Registry

	matched *prometheus.GaugeVec
	deleted *prometheus.GaugeVec
	failed  *prometheus.GaugeVec
	lastRun prometheus.Gauge
}

func NewTextfileRecorder(file string) *TextfileRecorder {
	r := &TextfileRecorder{
		file:     file,
		registry: prometheus.NewRegistry(),

		matched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "target",
			Name:      "matched_entries",
			Help:      "Entries matched by the target pattern during the last run.",
		}, []string{"pattern"}),

		deleted: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "target",
			Name:      "deleted_entries",
			Help:      "Entries deleted by the target during the last run.",
		}, []string{"pattern"}),

		failed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "target",
			Name:      "failures",
			Help:      "Failures recorded by the target during the last run.",
		}, []string{"pattern"}),

		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished at.",
		}),
	}

	r.registry.MustRegister(r.matched, r.deleted, r.failed, r.lastRun)

	return r
}

func (r *TextfileRecorder) RecordTarget(pattern string, stats domain.Stats) {
	r.matched.WithLabelValues(pattern).Set(float64(stats.Matched))
	r.deleted.WithLabelValues(pattern).Set(float64(stats.Deleted))
	r.failed.WithLabelValues(pattern).Set(float64(stats.Failed))
}

func (r *TextfileRecorder) Flush(finishedAt time.Time) error {
	r.lastRun.Set(float64(finishedAt.Unix()))

	if r.file == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(r.file, r.registry); err != nil {
		return errors.Wrapf(err, "Unable to write metrics to %s", r.file)
	}

	return nil
}
