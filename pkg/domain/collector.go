package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/fsgc/pkg/appcontext"
	"github.com/yurykabanov/fsgc/pkg/dur"
)

type Reporter interface {
	Header(time.Time) error
	Failures([]*Error) error
}

type MetricsRecorder interface {
	RecordTarget(pattern string, stats Stats)
	Flush(finishedAt time.Time) error
}

// Collector is the core of fsgc: it clears every configured target once,
// strictly in configuration order, and reports what could not be cleared.
type Collector struct {
	logger logrus.FieldLogger

	targets []*Target

	reporter Reporter
	metrics  MetricsRecorder
}

func NewCollector(
	logger logrus.FieldLogger,
	targets []*Target,
	reporter Reporter,
	metrics MetricsRecorder,
) *Collector {
	return &Collector{
		logger:   logger,
		targets:  targets,
		reporter: reporter,
		metrics:  metrics,
	}
}

// Run performs one collection pass and returns the number of recorded
// failures. A returned error means the report itself could not be written.
func (c *Collector) Run(ctx context.Context) (int, error) {
	ctx = appcontext.WithRunId(ctx, uuid.New().String())
	logger := appcontext.LoggerFromContext(c.logger, ctx)

	startedAt := time.Now()

	if err := c.reporter.Header(startedAt); err != nil {
		return 0, errors.Wrap(err, "Unable to write report header")
	}

	logger.WithField("targets", len(c.targets)).Info("Starting collection")

	failures := 0

	for _, target := range c.targets {
		n, err := c.clearTarget(appcontext.WithPattern(ctx, target.Pattern), target)
		failures += n

		if err != nil {
			return failures, err
		}
	}

	if err := c.metrics.Flush(time.Now()); err != nil {
		logger.WithError(err).Error("Unable to write metrics")
	}

	logger.WithFields(logrus.Fields{
		"failures":    failures,
		"duration_ns": time.Since(startedAt).Nanoseconds(),
	}).Info("Collection finished")

	return failures, nil
}

func (c *Collector) clearTarget(ctx context.Context, target *Target) (int, error) {
	logger := appcontext.LoggerFromContext(c.logger, ctx).WithField("age", dur.Format(target.Rule.Age))

	if !target.Rule.IsEnabled() {
		logger.Warn("Rule has no timestamp enabled, nothing will ever be deleted")
	}

	stats, err := target.Clear(ctx)
	c.metrics.RecordTarget(target.Pattern, stats)

	logger.WithFields(logrus.Fields{
		"matched": stats.Matched,
		"deleted": stats.Deleted,
		"kept":    stats.Kept,
		"failed":  stats.Failed,
	}).Info("Target cleared")

	if err == nil {
		return 0, nil
	}

	var clearErr *Error
	if !errors.As(err, &clearErr) {
		clearErr = globError(target.Pattern, err)
	}

	leaves := clearErr.Flatten()
	for _, leaf := range leaves {
		logger.WithField("kind", leaf.Kind.String()).WithError(leaf).Warn("Unable to clear entry")
	}

	if err := c.reporter.Failures(leaves); err != nil {
		return len(leaves), errors.Wrap(err, "Unable to write report")
	}

	return len(leaves), nil
}
