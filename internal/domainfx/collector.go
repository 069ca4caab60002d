package domainfx

import (
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/fsgc/pkg/domain"
)

func Collector(
	logger *logrus.Logger,
	targets []*domain.Target,
	reporter domain.Reporter,
	metrics domain.MetricsRecorder,
) *domain.Collector {
	return domain.NewCollector(logger, targets, reporter, metrics)
}
