package loggerfx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx/fxevent"
)

type eventLogger struct {
	logger logrus.FieldLogger
}

// EventLogger routes fx lifecycle events to logrus: errors are logged as
// such, everything else at debug level.
func EventLogger(logger *logrus.Logger) fxevent.Logger {
	return &eventLogger{logger: logger}
}

func (l *eventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			l.logger.WithError(e.Err).WithField("constructor", e.ConstructorName).Error("Unable to provide")
			return
		}
		l.logger.WithField("constructor", e.ConstructorName).Debug("Provided")

	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.WithError(e.Err).WithField("function", e.FunctionName).Error("Unable to invoke")
			return
		}
		l.logger.WithField("function", e.FunctionName).Debug("Invoked")

	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.logger.WithError(e.Err).WithField("callee", e.FunctionName).Error("Stop hook failed")
		}

	case *fxevent.Started:
		if e.Err != nil {
			l.logger.WithError(e.Err).Error("Unable to start")
			return
		}
		l.logger.Debug("Started")

	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.WithError(e.Err).Error("Unable to stop cleanly")
			return
		}
		l.logger.Debug("Stopped")
	}
}
