package metricsfx

import (
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/fsgc/pkg/config"
	"github.com/yurykabanov/fsgc/pkg/domain"
	"github.com/yurykabanov/fsgc/pkg/metrics"
)

type TextfileConfig struct {
	File string
}

func TextfileConfigProvider(cfg *config.Config) *TextfileConfig {
	return &TextfileConfig{
		File: cfg.Options.MetricsFile,
	}
}

func TextfileRecorder(config *TextfileConfig, logger *logrus.Logger) domain.MetricsRecorder {
	if config.File != "" {
		logger.WithField("file", config.File).Debug("Metrics will be written to textfile")
	}

	return metrics.NewTextfileRecorder(config.File)
}
