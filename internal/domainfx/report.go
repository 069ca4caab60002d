package domainfx

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/yurykabanov/fsgc/pkg/config"
	"github.com/yurykabanov/fsgc/pkg/domain"
	"github.com/yurykabanov/fsgc/pkg/report"
)

func ReportSinkConfigProvider(cfg *config.Config) *report.SinkConfig {
	return &report.SinkConfig{
		File:       cfg.Options.LogFile,
		Overwrite:  cfg.Options.OverwriteLogs,
		MaxSize:    cfg.Options.LogMaxSize,
		MaxBackups: cfg.Options.LogMaxBackups,
	}
}

func OpenReportSink(config *report.SinkConfig, logger *logrus.Logger) (io.WriteCloser, error) {
	if config.File != "" {
		logger.WithFields(logrus.Fields{
			"file":      config.File,
			"overwrite": config.Overwrite,
		}).Debug("Opening report file")
	}

	return report.OpenSink(*config)
}

func CloseReportSink(lc fx.Lifecycle, w io.WriteCloser) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return w.Close()
		},
	})
}

func Reporter(cfg *config.Config, w io.WriteCloser) (domain.Reporter, error) {
	r, err := report.New(w, cfg.Options.Header, cfg.Options.ErrorPrefix)
	if err != nil {
		return nil, err
	}

	return r, nil
}
