package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/yurykabanov/fsgc/internal/configfx"
	"github.com/yurykabanov/fsgc/internal/domainfx"
	"github.com/yurykabanov/fsgc/internal/loggerfx"
	"github.com/yurykabanov/fsgc/internal/metricsfx"
	"github.com/yurykabanov/fsgc/pkg/domain"
)

func main() {
	logger := loggerfx.Logger()

	var collector *domain.Collector

	app := fx.New(
		fx.StartTimeout(15*time.Second),
		fx.StopTimeout(15*time.Second),

		loggerfx.Module,
		configfx.Module,
		metricsfx.Module,
		domainfx.Module,

		fx.Populate(&collector),
	)

	if err := app.Err(); err != nil {
		logger.WithError(err).Fatal("Unable to initialize")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	err := app.Start(startCtx)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("Unable to start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	_, runErr := collector.Run(ctx)
	stop()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	err = app.Stop(stopCtx)
	cancel()

	if runErr != nil {
		logger.WithError(runErr).Fatal("Collection aborted")
	}
	if err != nil {
		logger.WithError(err).Fatal("Unable to stop")
	}
}
